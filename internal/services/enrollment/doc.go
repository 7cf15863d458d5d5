// Package enrollment registers students for sports.
//
// A registration needs a name, a year of study and a sport from the
// catalog; names are unique across all registrations.
package enrollment
