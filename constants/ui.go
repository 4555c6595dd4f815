package constants

// Glyphs
const (
	GlyphEmpty = ' '
	GlyphHead  = '▓'
	GlyphBody  = '▒'
	GlyphFood  = '♣'

	// Frame
	GlyphBorderTopLeft     = '┌'
	GlyphBorderTopRight    = '┐'
	GlyphBorderBottomLeft  = '└'
	GlyphBorderBottomRight = '┘'
	GlyphBorderHorizontal  = '─'
	GlyphBorderVertical    = '│'
)

// UI Text
const (
	// ScoreLabel prefixes the score line below the field
	ScoreLabel = "Score: "

	// WelcomePrompt is shown under the welcome banner
	WelcomePrompt = "Press Enter to Start New Game"

	// GameOverPrompt is shown under the game over banner
	GameOverPrompt = "Press Enter or q to exit"
)

// WelcomeBanner is the ASCII art shown before the game starts
var WelcomeBanner = []string{
	`  ______   __    __   ______   __    __  ________ `,
	` /      \ |  \  |  \ /      \ |  \  /  \|        \`,
	`|  $$$$$$\| $$\ | $$|  $$$$$$\| $$ /  $$| $$$$$$$$`,
	`| $$___\$$| $$$\| $$| $$__| $$| $$/  $$ | $$__    `,
	` \$$    \ | $$$$\ $$| $$    $$| $$  $$  | $$  \   `,
	` _\$$$$$$\| $$\$$ $$| $$$$$$$$| $$$$$\  | $$$$$   `,
	`|  \__| $$| $$ \$$$$| $$  | $$| $$ \$$\ | $$_____ `,
	` \$$    $$| $$  \$$$| $$  | $$| $$  \$$\| $$     \`,
	`  \$$$$$$  \$$   \$$ \$$   \$$ \$$   \$$ \$$$$$$$$`,
}

// GameOverBanner is the ASCII art shown when the game ends
var GameOverBanner = []string{
	`   ______ ___    __  _________   ____ _    ____________ `,
	`  / ____//   |  /  |/  / ____/  / __ \ |  / / ____/ __ \`,
	` / / __ / /| | / /|_/ / __/    / / / / | / / __/ / /_/ /`,
	`/ /_/ // ___ |/ /  / / /___   / /_/ /| |/ / /___/ _, _/ `,
	`\____//_/  |_/_/  /_/_____/   \____/ |___/_____/_/ |_|  `,
}
