// Package slam implements the tinySLAM / CoreSLAM family of algorithms: a
// scan-matching localizer coupled to an incremental occupancy-grid mapper,
// with a Random-Mutation Hill-Climbing (RMHC) pose search.
//
// Given a stream of per-revolution laser scans and, optionally, wheel
// odometry, a SLAM value maintains an occupancy grid map of the environment
// and a single estimated robot pose in that map. There is no loop closure,
// no multi-hypothesis tracking, and no persistence beyond a raw grayscale
// byte array; those concerns belong to the caller.
package slam
