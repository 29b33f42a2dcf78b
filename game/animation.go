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
 *  Animations
 */
func welcomeAnimation(hw Hardware) {

	// Run round the pads twice, each with its own note...
	for i := 0; i < WELCOME_CASCADES; i++ {
		for _, ch := range Channels {
			hw.SetLED(ch, ON)
			hw.PlayTone(ch.Tone(), WELCOME_STEP_MS)
			hw.Delay(WELCOME_STEP_MS)
			hw.SetLED(ch, OFF)
		}
	}
	hw.StopTone()

	// ...then flash them all together
	for i := 0; i < WELCOME_FLASHES; i++ {
		setAll(hw, ON)
		hw.Delay(WELCOME_FLASH_ON_MS)
		setAll(hw, OFF)
		hw.Delay(WELCOME_FLASH_OFF_MS)
	}
}

func gameOverAnimation(hw Hardware) {

	for i := 0; i < ERROR_FLASHES; i++ {
		setAll(hw, ON)
		hw.PlayTone(ERROR_TONE_HZ, ERROR_FLASH_ON_MS)
		hw.Delay(ERROR_FLASH_ON_MS)
		setAll(hw, OFF)
		hw.StopTone()
		hw.Delay(ERROR_FLASH_OFF_MS)
	}

	hw.Delay(GAME_OVER_PAUSE_MS)
}

// playFeedback lights and sounds the pad the player just pressed.
func playFeedback(hw Hardware, ch Channel) {

	hw.SetLED(ch, ON)
	hw.PlayTone(ch.Tone(), FEEDBACK_TONE_MS)
	hw.Delay(FEEDBACK_TONE_MS)
	hw.SetLED(ch, OFF)
	hw.StopTone()
}

func setAll(hw LEDs, on bool) {

	for _, ch := range Channels {
		hw.SetLED(ch, on)
	}
}
