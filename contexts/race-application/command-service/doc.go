// Package commandservice owns the write side of the trail-race system:
// race and application commands against the write store, with one domain
// event published per successful write. The read side never shares this
// store; it follows along through the events alone.
package commandservice
