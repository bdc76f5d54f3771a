// Package spline builds Catmull-Rom paths through 3D waypoints and times
// them for constant-speed travel.
/*

A path is built from an ordered list of waypoints. The curve passes
exactly through every waypoint; the tangent at a waypoint is derived from
its two neighbours (Catmull-Rom with tangent scale 1/2). At the ends of the
curve, missing neighbours are replaced by the end point itself, i.e.
control indices are clamped, never wrapped.

Every path has a play mode:

   Single     play once, stop at the last waypoint
   PingPong   reverse direction at either end
   Loop       wrap around to a designated start waypoint

For Loop paths a copy of the loop-start waypoint is appended to the curve
points, so the last segment re-enters the start region. All segment
indices refer to this extended sequence.

Usage

Clients build a skeleton with the builder methods and then construct the
path (package qualifiers omitted):

   skeleton := Nullpath().Waypoint(V(0,0,0)).Waypoint(V(10,0,0)).
      Waypoint(V(10,10,0)).Speed(5).Loop(0)
   path, err := BuildPath(skeleton)

or, without a builder:

   path, err := Build(waypoints, Loop, 0, 5)

A built path is immutable. It knows the travel duration of each segment
in milliseconds (segment length divided by speed) and may be sampled with
PointAt(segment, fraction). Segment length is the straight-line distance
between the two waypoints unless the skeleton asked for sampled arc length
with Sampled(n).

Printed with AsString, a timed path looks like this:

   (0,0,0) ..[2000ms].. (10,0,0) ..[2000ms].. (10,10,0)


BSD License

Copyright (c) The a-blast Authors

All rights reserved.

Please refer to the license file for more information.
*/
package spline
