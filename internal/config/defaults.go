package config

import (
	_ "embed"
)

//go:embed defaults/flabird.yaml
var defaultFlabirdYAML []byte

// Default returns the built-in configuration, matching the classic
// 360x640 board.
func Default() FlabirdConfig {
	const boardW, boardH = 360.0, 640.0
	return FlabirdConfig{
		Board: Board{
			Width:  boardW,
			Height: boardH,
		},
		Bird: Bird{
			X:      boardW / 8,
			Y:      boardH / 2,
			Width:  34, // 408x228 sprite, 17:12
			Height: 24,
		},
		Pipes: Pipes{
			Width:           64, // 384x3072 sprite, 1:8
			Height:          512,
			SpawnX:          boardW,
			SpawnIntervalMS: 1500,
		},
		Physics: Physics{
			Gravity:     0.4,
			JumpImpulse: -6,
			VelocityX:   -2,
			Ceiling:     0,
			LandY:       boardH,
		},
		Scoring: Scoring{
			PipeValue:    0.5,
			HighScoreKey: "hightscore",
		},
		Splash: Splash{
			X:      boardW / 5,
			Y:      boardH / 3,
			Width:  188,
			Height: 170,
		},
		Assets: Assets{
			Bird:       "flappybird.txt",
			TopPipe:    "toppipe.txt",
			BottomPipe: "bottompipe.txt",
			Splash:     "splash.txt",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlabirdYAML
}
