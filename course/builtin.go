package course

import "embed"

// Builtin holds the courses shipped with the game, under "courses/".
//
//go:embed courses/*.tmx
var Builtin embed.FS

// BuiltinDir is the directory of Builtin that holds the course files.
const BuiltinDir = "courses"
