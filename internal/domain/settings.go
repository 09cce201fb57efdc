package domain

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidThemes is the canonical set of accepted theme strings.
var ValidThemes = map[Theme]bool{
	ThemeLight: true, ThemeDark: true, ThemeSystem: true,
}

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy: true, DifficultyMedium: true, DifficultyHard: true,
}

// Settings holds user preferences, persisted separately from Progress.
type Settings struct {
	Theme             Theme
	SoundEnabled      bool
	AnimationsEnabled bool
	HintsEnabled      bool
	Difficulty        Difficulty
}

// DefaultSettings returns the first-run preferences.
func DefaultSettings() Settings {
	return Settings{
		Theme:             ThemeSystem,
		SoundEnabled:      true,
		AnimationsEnabled: true,
		HintsEnabled:      true,
		Difficulty:        DifficultyMedium,
	}
}

// SettingsPatch is a typed partial update for Settings. Nil fields are left
// untouched.
type SettingsPatch struct {
	Theme             *Theme
	SoundEnabled      *bool
	AnimationsEnabled *bool
	HintsEnabled      *bool
	Difficulty        *Difficulty
}
