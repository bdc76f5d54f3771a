package pathdesc

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is the quiet time after the last write to a path description
// before it is read again.
const settle = 100 * time.Millisecond

// Reload is a path description read again after it changed on disk. Doc is
// nil if the file could not be loaded; Err tells why. Errors of the file
// system watch itself arrive with an empty File.
type Reload struct {
	File string
	Doc  *Document
	Err  error
}

// Watcher re-reads path description files when they change. Editors often
// save through a temporary file, so Watcher watches the directories holding
// the files and picks out events for the files themselves.
//
// A host typically Applies each reloaded document to the movements using it:
//
//	w, err := pathdesc.Watch("enemy.yaml")
//	…
//	for r := range w.Reloads() {
//	    if r.Err == nil {
//	        r.Err = r.Doc.Apply(mv)
//	    }
//	}
type Watcher struct {
	fs      *fsnotify.Watcher
	files   map[string]bool
	reloads chan Reload
	done    chan struct{}
	stop    sync.Once
}

// Watch starts watching the given path description files.
func Watch(files ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fs:      fs,
		files:   make(map[string]bool, len(files)),
		reloads: make(chan Reload, 4),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, file := range files {
		file = filepath.Clean(file)
		w.files[file] = true
		if dir := filepath.Dir(file); !dirs[dir] {
			if err := fs.Add(dir); err != nil {
				_ = fs.Close()
				return nil, err
			}
			dirs[dir] = true
		}
	}
	tracer().Debugf("watching %d path descriptions in %d directories", len(w.files), len(dirs))
	go w.run()
	return w, nil
}

// Reloads delivers changed path descriptions. The channel is closed after
// Close.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Close stops watching. Further calls do nothing.
func (w *Watcher) Close() error {
	var err error
	w.stop.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.reloads)
	changed := make(map[string]bool)
	quiet := time.NewTimer(settle)
	quiet.Stop()
	defer quiet.Stop()
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			changed[name] = true
			quiet.Reset(settle)
		case <-quiet.C:
			for name := range changed {
				delete(changed, name)
				doc, err := Load(name)
				if err != nil {
					tracer().Errorf("reloading path description: %v", err)
				}
				if !w.send(Reload{File: name, Doc: doc, Err: err}) {
					return
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			tracer().Errorf("watching path descriptions: %v", err)
			if !w.send(Reload{Err: err}) {
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) send(r Reload) bool {
	select {
	case w.reloads <- r:
		return true
	case <-w.done:
		return false
	}
}
