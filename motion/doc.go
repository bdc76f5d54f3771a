// Package motion plays spline paths back in time.
/*

A mover follows a spline.Path one segment at a time. Each segment has its
own travel duration; the mover measures the time spent in the current
segment, turns it into a fraction of the segment, eases it, and samples
the path. When a segment's time is used up the mover crosses into the next
segment, reverses (PingPong), wraps around (Loop) or stops (Single).

All per-mover state lives in a PlayState, which callers own and pass to
Start and Advance:

   var st PlayState
   Start(&st, 0)
   for each frame {
      if pos, ok := Advance(path, &st, now); ok {
         // write pos to the entity
      }
   }

Player bundles a path with its state; Movement adds the glue an entity
needs: rebuilding the path when waypoints or mode change, writing
positions to a TransformSink and showing the path on a LineRenderer in
debug mode.

Everything in this package is single-threaded and driven by the host's
frame ticks. Nothing blocks.


BSD License

Copyright (c) The a-blast Authors

All rights reserved.

Please refer to the license file for more information.
*/
package motion
