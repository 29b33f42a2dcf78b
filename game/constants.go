/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package game

/*
 * CONSTANTS
 */
const (
	ON  bool = true
	OFF bool = false

	// Longest sequence a round can reach
	MAX_SEQUENCE_LENGTH int = 100

	// Button debounce check time
	DEBOUNCE_TIME_MS uint32 = 200

	// Sequence playback
	PLAYBACK_TONE_MS uint32 = 500
	PLAYBACK_GAP_MS  uint32 = 300
	ROUND_PAUSE_MS   uint32 = 1000

	// Start button
	START_PAUSE_MS        uint32 = 500
	START_BLINK_PERIOD_MS uint32 = 500

	// Player feedback on a recognised press
	FEEDBACK_TONE_MS uint32 = 300

	// Welcome animation
	WELCOME_CASCADES     int    = 2
	WELCOME_STEP_MS      uint32 = 100
	WELCOME_FLASHES      int    = 4
	WELCOME_FLASH_ON_MS  uint32 = 200
	WELCOME_FLASH_OFF_MS uint32 = 200

	// Game over animation
	ERROR_TONE_HZ      uint   = 150
	ERROR_FLASHES      int    = 3
	ERROR_FLASH_ON_MS  uint32 = 300
	ERROR_FLASH_OFF_MS uint32 = 200
	GAME_OVER_PAUSE_MS uint32 = 1000
)
