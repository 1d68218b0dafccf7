package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	CameraRig = donburi.NewTag().SetName("CameraRig")
	Obstacle  = donburi.NewTag().SetName("Obstacle")
	Ramp      = donburi.NewTag().SetName("Ramp")
	Platform  = donburi.NewTag().SetName("Platform")
)
