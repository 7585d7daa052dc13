// Package tui is the full-screen payforms front end, built on bubbletea.
//
// The menu lists every screen of the form catalog plus logout. Opening a
// screen shows one text input per field; enter on the last input submits,
// a spinner runs while the request is pending, and the rendered result or
// failure message appears below the inputs. esc closes the screen and
// cancels its request; a late answer is dropped. ctrl+c quits.
package tui
