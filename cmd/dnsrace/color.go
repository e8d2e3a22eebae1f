// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import "github.com/muesli/termenv"

var (
	honestResolverStyle       = termenv.Style{}.Foreground(termenv.ANSIGreen)
	interceptingResolverStyle = termenv.Style{}.Foreground(termenv.ANSIRed)
	tieGroupStyle             = termenv.Style{}.Foreground(termenv.ANSIYellow)
	progressStyle             = termenv.Style{}.Foreground(termenv.ANSICyan)
)

var headingStyle = termenv.Style{}.Bold()
