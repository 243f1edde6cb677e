// Package queryservice owns the read side of the trail-race system: a
// replica of races and applications maintained solely from command-side
// events, served through read-only lookups. The replica is eventually
// consistent; an application's embedded race snapshot reflects the race at
// application-creation time and is never refreshed.
package queryservice
