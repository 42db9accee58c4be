package script

import "strings"

// JacketAdvice returns a short Dutch recommendation about wearing a jacket.
// A forecast that is clearly wetter or more than three degrees colder than
// the current observation earns an extra warning sentence.
func JacketAdvice(tempC float64, condition string, forecast *Forecast) string {
	cond := strings.ToLower(condition)

	useTemp := tempC
	useCond := cond
	if forecast != nil {
		useTemp = forecast.Temp
		if forecast.Condition != "" {
			useCond = strings.ToLower(forecast.Condition)
		}
	}

	forecastWorse := false
	if forecast != nil && forecast.Condition != "" {
		fc := strings.ToLower(forecast.Condition)
		if (strings.Contains(fc, "regen") || strings.Contains(fc, "bui")) && !strings.Contains(cond, "regen") && !strings.Contains(cond, "bui") {
			forecastWorse = true
		}
		if forecast.Temp < tempC-3 {
			forecastWorse = true
		}
	}

	if useTemp <= 5 {
		advice := "Doe zeker een dikke jas aan en misschien zelfs een sjaal om."
		if forecastWorse {
			advice += " En houd rekening met de voorspelling: het kan nog kouder worden."
		}
		return advice
	}
	if rainy(useCond) {
		advice := "Neem zeker een jas en liefst ook een regenjas mee."
		if forecastWorse {
			advice += " De voorspelling geeft aan dat het later nog natter kan worden."
		}
		return advice
	}
	if useTemp <= 12 {
		advice := "Een jas is aan te raden, vooral in de ochtend en avond."
		if forecastWorse {
			advice += " De voorspelling suggereert dat het later kouder wordt."
		}
		return advice
	}
	if useTemp <= 18 {
		return "Een lichte jas of vest is meestal voldoende."
	}
	return "Een jas is vandaag echt niet nodig."
}

// BBQAdvice returns a short Dutch recommendation about doing a barbecue.
func BBQAdvice(tempC float64, condition string) string {
	cond := strings.ToLower(condition)

	if strings.Contains(cond, "onweer") || strings.Contains(cond, "storm") {
		return "Barbecue wordt afgeraden door de kans op onweer en harde wind."
	}
	if rainy(cond) {
		return "Barbecue kan, maar alleen met beschutting: er is kans op regen."
	}
	if tempC < 12 {
		return "Het is vrij koud voor een lange barbecue buiten."
	}
	if tempC <= 25 {
		return "Prima barbecueweer als je rekening houdt met de wind."
	}
	return "Het is behoorlijk warm, zorg bij een barbecue voor genoeg drinken en schaduw."
}
