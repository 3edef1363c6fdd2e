package system

import "github.com/milk9111/platformer/ecs"

// NewPipeline returns the frame schedule in its required order: the player
// resolves before the camera, the camera before anything that reads scroll.
func NewPipeline() *ecs.Scheduler[*Context] {
	return ecs.NewScheduler[*Context](
		NewPlayerControlSystem(),
		NewPlayerMovementSystem(),
		NewCameraSystem(),
		NewAISystem(),
		NewProjectileSystem(),
		NewExplosiveSystem(),
		NewExplosionSystem(),
		NewPickupSystem(),
		NewExitSystem(),
		NewHealthSystem(),
		NewAnimationSystem(),
		NewCooldownSystem(),
	)
}
