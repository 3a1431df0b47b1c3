// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import "github.com/danielhkuo/eurovision-table/roster"

// Eurovision2023 holds the 2023 rosters in running order.
var Eurovision2023 = map[string][]roster.Entry{
	"Semi-final 1": {
		entry("Finland", "Käärijä", "Cha Cha Cha"),
		entry("Sweden", "Loreen", "Tattoo"),
		entry("Israel", "Noa Kirel", "Unicorn"),
		entry("Czech Republic", "Vesna", "My Sister's Crown"),
		entry("Moldova", "Pasha Parfeni", "Soarele și Luna"),
		entry("Norway", "Alessandra", "Queen of Kings"),
		entry("Croatia", "Let 3", "Mama ŠČ!"),
		entry("Switzerland", "Remo Forrer", "Watergun"),
		entry("Portugal", "Mimicat", "Ai Coração"),
		entry("Serbia", "Luke Black", "Samo Mi Se Spava"),
		entry("Latvia", "Sudden Lights", "Aijā"),
		entry("Ireland", "Wild Youth", "We Are One"),
		entry("Netherlands", "Mia Nicolai & Dion Cooper", "Burning Daylight"),
		entry("Azerbaijan", "TuralTuranX", "Tell Me More"),
		entry("Malta", "The Busker", "Dance (Our Own Party)"),
	},
	"Semi-final 2": {
		entry("Albania", "Albina & Familja Kelmendi", "Duje"),
		entry("Cyprus", "Andrew Lambrou", "Break a Broken Heart"),
		entry("Romania", "Theodor Andrei", "D.G.T. (Off and On)"),
		entry("Denmark", "Reiley", "Breaking My Heart"),
		entry("Belgium", "Gustaph", "Because of You"),
		entry("Iceland", "Diljá", "Power"),
		entry("Greece", "Victor Vernicos", "What They Say"),
		entry("Estonia", "Alika", "Bridges"),
		entry("Australia", "Voyager", "Promise"),
		entry("Austria", "Teya & Salena", "Who The Hell Is Edgar?"),
		entry("Lithuania", "Monika Linkytė", "Stay"),
		entry("San Marino", "Piqued Jacks", "Like An Animal"),
		entry("Slovenia", "Joker Out", "Carpe Diem"),
		entry("Georgia", "Iru", "Echo"),
		entry("Armenia", "Brunette", "Future Lover"),
	},
	"Final": {
		entry("Sweden", "Loreen", "Tattoo"),
		entry("Finland", "Käärijä", "Cha Cha Cha"),
		entry("Israel", "Noa Kirel", "Unicorn"),
		entry("Italy", "Marco Mengoni", "Due Vite"),
		entry("Norway", "Alessandra", "Queen of Kings"),
		entry("Ukraine", "TVORCHI", "Heart of Steel"),
		entry("Belgium", "Gustaph", "Because of You"),
		entry("Estonia", "Alika", "Bridges"),
		entry("Australia", "Voyager", "Promise"),
		entry("Czech Republic", "Vesna", "My Sister's Crown"),
		entry("Lithuania", "Monika Linkytė", "Stay"),
		entry("Cyprus", "Andrew Lambrou", "Break a Broken Heart"),
		entry("Croatia", "Let 3", "Mama ŠČ!"),
		entry("Armenia", "Brunette", "Future Lover"),
		entry("Austria", "Teya & Salena", "Who The Hell Is Edgar?"),
		entry("Switzerland", "Remo Forrer", "Watergun"),
		entry("France", "La Zarra", "Évidemment"),
		entry("Spain", "Blanca Paloma", "Eaea"),
		entry("Moldova", "Pasha Parfeni", "Soarele și Luna"),
		entry("Poland", "Blanka", "Solo"),
		entry("Portugal", "Mimicat", "Ai Coração"),
		entry("Serbia", "Luke Black", "Samo Mi Se Spava"),
		entry("United Kingdom", "Mae Muller", "I Wrote A Song"),
		entry("Slovenia", "Joker Out", "Carpe Diem"),
		entry("Albania", "Albina & Familja Kelmendi", "Duje"),
		entry("Germany", "Lord Of The Lost", "Blood & Glitter"),
	},
}

func entry(country, artist, song string) roster.Entry {
	return roster.Entry{Country: country, Artist: artist, Song: song}
}
