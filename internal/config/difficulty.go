package config

// ApplyDifficulty returns the scroll speed and max gap for a freshly reached score.
// Both step up by their increments whenever score is a positive multiple of the
// interval; any other score leaves them unchanged. There is no cap.
func ApplyDifficulty(d DifficultyConfig, score int, speed, maxGap float64) (float64, float64) {
	if !d.IsEnabled() || score <= 0 || score%d.Interval != 0 {
		return speed, maxGap
	}
	return speed + d.SpeedIncrement, maxGap + d.GapIncrement
}

// IsEnabled returns whether difficulty progression is active.
func (d DifficultyConfig) IsEnabled() bool {
	return d.Enabled && d.Interval > 0
}

// Level returns the 1-based difficulty level shown to the player.
func (d DifficultyConfig) Level(score int) int {
	if d.Interval <= 0 || score < 0 {
		return 1
	}
	return score/d.Interval + 1
}
