package slam

import (
	"fmt"
	"math"
)

// Pose is the robot's estimated position and heading in the map frame.
// Theta is measured counter-clockwise from the +X axis, in degrees. Pose
// has value semantics: copying a Pose copies its coordinates.
type Pose struct {
	XMM      float64
	YMM      float64
	ThetaDeg float64
}

// PoseChange is the (dxy, dtheta, dt) tuple an odometry model or other
// external collaborator hands to SLAM.Update between two scans.
type PoseChange struct {
	DXYMM     float64 // forward distance traveled, millimeters
	DThetaDeg float64 // change in heading, degrees
	DtS       float64 // elapsed time, seconds; dt <= 0 means "no velocity"
}

func (p Pose) thetaRadians() float64 {
	return p.ThetaDeg * math.Pi / 180
}

// CosTheta returns the cosine of the pose's heading.
func (p Pose) CosTheta() float64 {
	return math.Cos(p.thetaRadians())
}

// SinTheta returns the sine of the pose's heading.
func (p Pose) SinTheta() float64 {
	return math.Sin(p.thetaRadians())
}

// ToWorld rotates the robot-frame point (x, y) by the pose's heading and
// translates it by the pose's position, returning its world-frame
// coordinates. This is the transform the distance function and map
// integration use to project scan endpoints into the map.
func (p Pose) ToWorld(x, y float64) (wx, wy float64) {
	cosT, sinT := p.CosTheta(), p.SinTheta()
	wx = p.XMM + x*cosT - y*sinT
	wy = p.YMM + x*sinT + y*cosT
	return wx, wy
}

// String renders the pose for logs and debugging.
func (p Pose) String() string {
	return fmt.Sprintf("Pose(x=%.1fmm y=%.1fmm theta=%.2fdeg)", p.XMM, p.YMM, p.ThetaDeg)
}
