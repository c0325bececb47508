package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer; the simulation has no render passes.
const Default ecs.LayerID = 0
