package script

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

var weekdaysNL = []string{
	"maandag", "dinsdag", "woensdag",
	"donderdag", "vrijdag", "zaterdag", "zondag",
}

var monthsNL = []string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

var greetings = []string{
	"Goedendag!",
	"Hallo daar!",
	"Goedemorgen!",
	"Hoi allemaal!",
	"Wees gegroet!",
}

var tempPatterns = []string{
	"Vandaag in {city} wordt het ongeveer {temp} graden.",
	"In {city} schommelt de temperatuur rond de {temp} graden.",
	"Rond de {temp} graden vandaag in {city}.",
	"De temperatuur in {city} ligt vandaag rond de {temp} graden.",
}

var condPatterns = []string{
	"Er wordt {cond} voorspeld.",
	"Je kunt {cond} verwachten.",
	"We krijgen te maken met {cond}.",
	"Het weerbeeld: {cond}.",
}

var moodPatterns = []string{
	"Al met al voelt het {mood}.",
	"De dag voelt daardoor {mood}.",
	"Het voelt dus {mood}.",
	"Ik heb het {mood}.",
}

var predictionPatterns = []string{
	"Voor vandaag wordt {temp} graden en {cond} voorspeld.",
	"De voorspelling voor vandaag: {temp} graden en {cond}.",
	"Vandaag wordt het naar verwachting {temp} graden met {cond}.",
	"De verwachting is {temp} graden en {cond} vandaag.",
}

var closings = []string{
	"Een fijne dag gewenst! Houdoe.",
	"Geniet van het weer en tot snel!",
	"Maak er een mooie dag van!",
	"Blijf warm en droog, en tot de volgende keer!",
	"Ik ga denk ik kipraps met surimikrapsalade eten als lunch! Wat gaan jullie eten?",
	"doei",
}

// WeatherParams carries the observation values a weather script is built from.
type WeatherParams struct {
	City      string
	TempC     float64
	Condition string
	Mood      string
	Forecast  *Forecast
}

// Builder assembles scripts from sentence templates. The rng picks template
// variants; inject a seeded one for deterministic output.
type Builder struct {
	rng *rand.Rand
	now func() time.Time
}

// NewBuilder returns a Builder using the wall clock for dates.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{rng: rng, now: time.Now}
}

// WithClock overrides the time source used for the date sentence.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WeatherScript builds a varied Dutch forecast text: greeting, date,
// temperature, condition, mood, an optional prediction when forecast values
// are present, jacket advice, and a closing line.
func (b *Builder) WeatherScript(p WeatherParams) string {
	now := b.now()
	weekday := weekdaysNL[(int(now.Weekday())+6)%7]
	dateSentence := fmt.Sprintf("Vandaag is het %s %d %s %d.", weekday, now.Day(), monthsNL[now.Month()-1], now.Year())

	parts := []string{
		b.pick(greetings),
		dateSentence,
		fill(b.pick(tempPatterns), "{city}", p.City, "{temp}", strconv.Itoa(int(p.TempC))),
		fill(b.pick(condPatterns), "{cond}", p.Condition),
		fill(b.pick(moodPatterns), "{mood}", p.Mood),
	}

	if p.Forecast != nil && p.Forecast.Condition != "" {
		parts = append(parts, fill(b.pick(predictionPatterns),
			"{temp}", strconv.Itoa(int(p.Forecast.Temp)),
			"{cond}", p.Forecast.Condition))
	}

	parts = append(parts,
		JacketAdvice(p.TempC, p.Condition, p.Forecast),
		b.pick(closings),
	)

	var out []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}

func (b *Builder) pick(options []string) string {
	return options[b.rng.Intn(len(options))]
}

func fill(pattern string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(pattern)
}
