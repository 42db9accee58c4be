// Package script assembles the short Dutch texts spoken by the gibberish
// voice: daily weather talk built from templated sentences and observation
// values, and Ramadan intro lines.
package script

// Condition maps a WMO present-weather code (code table 4677, "present
// weather reported from a manned weather station") to a short Dutch
// condition phrase. Unknown codes fall back to "bewolkt".
func Condition(ww int) string {
	switch {
	// 00-09: no precipitation; cloud development and visibility.
	case ww == 0:
		return "helder"
	case ww == 1:
		return "opklarend"
	case ww == 2:
		return "bewolkt"
	case ww == 3:
		return "toenemende bewolking"
	case ww == 4:
		return "rook"
	case ww == 5:
		return "nevel"
	case ww == 6:
		return "stof in de lucht"
	case ww == 7:
		return "stof of zand opwaaiend"
	case ww == 8:
		return "stofhoos"
	case ww == 9:
		return "stofstorm"

	// 10-19: no precipitation at the station; fog, lightning, distant showers.
	case ww == 10:
		return "mist"
	case ww == 11:
		return "mistbanken"
	case ww == 12:
		return "mist"
	case ww == 13:
		return "bliksem"
	case ww == 14, ww == 15:
		return "neerslag in de verte"
	case ww == 16:
		return "neerslag in de buurt"
	case ww == 17:
		return "onweer zonder neerslag"
	case ww == 18:
		return "windstoten"
	case ww == 19:
		return "windhoos"

	// 20-29: precipitation or fog during the preceding hour.
	case ww == 20:
		return "motregen"
	case ww == 21:
		return "regen"
	case ww == 22:
		return "sneeuw"
	case ww == 23:
		return "natte sneeuw"
	case ww == 24:
		return "ijzel"
	case ww == 25:
		return "regenbuien"
	case ww == 26:
		return "sneeuwbuien"
	case ww == 27:
		return "hagelbuien"
	case ww == 28:
		return "mist"
	case ww == 29:
		return "onweer"

	// 30-39: duststorm, sandstorm, drifting or blowing snow.
	case ww >= 30 && ww <= 32:
		return "stofstorm"
	case ww >= 33 && ww <= 35:
		return "zware stofstorm"
	case ww >= 36 && ww <= 39:
		return "opwaaiende sneeuw"

	// 40-49: fog or ice fog at observation time.
	case ww >= 40 && ww <= 49:
		return "mist"

	// 50-59: drizzle.
	case ww == 50, ww == 51:
		return "lichte motregen"
	case ww == 52, ww == 53:
		return "matige motregen"
	case ww == 54, ww == 55:
		return "zware motregen"
	case ww == 56:
		return "lichte ijzel"
	case ww == 57:
		return "ijzel"
	case ww == 58:
		return "lichte motregen en regen"
	case ww == 59:
		return "motregen en regen"

	// 60-69: rain.
	case ww == 60:
		return "lichte regen"
	case ww == 61:
		return "regen"
	case ww == 62, ww == 63:
		return "matige regen"
	case ww == 64, ww == 65:
		return "zware regen"
	case ww == 66:
		return "lichte ijzel"
	case ww == 67:
		return "ijzel"
	case ww == 68:
		return "lichte regen of motregen en sneeuw"
	case ww == 69:
		return "regen of motregen en sneeuw"

	// 70-79: solid precipitation not in showers.
	case ww == 70:
		return "lichte sneeuw"
	case ww == 71:
		return "sneeuw"
	case ww == 72, ww == 73:
		return "matige sneeuw"
	case ww == 74, ww == 75:
		return "zware sneeuw"
	case ww == 76:
		return "diamantstof"
	case ww == 77:
		return "sneeuwkorrels"
	case ww == 78:
		return "sneeuwkristallen"
	case ww == 79:
		return "ijskorrels"

	// 80-99: showery precipitation, or precipitation with thunderstorm.
	case ww == 80:
		return "lichte regenbuien"
	case ww == 81:
		return "regenbuien"
	case ww == 82:
		return "zware regenbuien"
	case ww == 83:
		return "lichte regen- en sneeuwbuien"
	case ww == 84:
		return "regen- en sneeuwbuien"
	case ww == 85:
		return "lichte sneeuwbuien"
	case ww == 86:
		return "sneeuwbuien"
	case ww == 87, ww == 89:
		return "lichte hagelbuien"
	case ww == 88, ww == 90:
		return "hagelbuien"
	case ww == 91:
		return "lichte regen met onweer"
	case ww == 92:
		return "regen met onweer"
	case ww == 93:
		return "lichte sneeuw of regen en sneeuw met onweer"
	case ww == 94:
		return "sneeuw of regen en sneeuw met onweer"
	case ww == 95:
		return "onweer met regen"
	case ww == 96:
		return "onweer met hagel"
	case ww == 97:
		return "zwaar onweer"
	case ww == 98:
		return "onweer met stofstorm"
	case ww == 99:
		return "zwaar onweer met hagel"
	}

	return "bewolkt"
}
