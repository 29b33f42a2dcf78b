//go:build tinygo

/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"simon/ht16k33"
)

/*
 * GLOBALS
 */
// Score display instance
var display ht16k33.HT16K33
var isDisplayPresent bool
