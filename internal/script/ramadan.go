package script

import "time"

// RamadanStart is the first day the Ramadan video runs.
var RamadanStart = time.Date(2025, time.February, 17, 0, 0, 0, 0, time.UTC)

var ramadanIntros = []string{
	"Vandaag een vers uit de Koran. Ramadan mubarak.",
	"Een vers voor vandaag. Ramadan mubarak.",
	"Ramadan mubarak. Hier een vers uit de Koran.",
}

// InRamadan reports whether d is on or after the Ramadan start date.
// Only the calendar date matters.
func InRamadan(d time.Time) bool {
	y, m, day := d.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return !today.Before(RamadanStart)
}

// RamadanIntro returns a short Dutch intro line for the daily verse video.
func (b *Builder) RamadanIntro() string {
	return b.pick(ramadanIntros)
}
