package funnel

// Section is one chapter of the story. Index is its position in document order.
type Section struct {
	Index    int
	Title    string
	Lines    []string
	Quotes   []string
	Checkout bool
}

var sections = []Section{
	{
		Index: 0,
		Title: "El Escape de las Palomas",
		Lines: []string{
			"En el principio, Miguel caminaba entre algoritmos rotos",
			"y páginas que prometían pero nunca entregaban.",
			"Las palomas ardientes no eran pájaros, eran símbolos",
			"de cada CTA que había perdido su alma en el código.",
		},
	},
	{
		Index: 1,
		Title: "La Cueva de Terciopelo",
		Lines: []string{
			"Aquí, Miguel descubrió las cámaras secretas",
			"donde la experiencia del usuario susurra sus confesiones más profundas,",
			"no en dashboards de analytics, sino en el silencio de terciopelo",
			"entre un botón perfecto y la mano que lo presiona.",
		},
		Quotes: []string{
			"Si el algoritmo resiste, Miguel lo desafiará al amanecer",
			"Cada píxel tiene un propósito, cada propósito una historia",
			"La elegancia no se codifica, se conjura",
		},
	},
	{
		Index: 2,
		Title: "El Observatorio del Pesar",
		Lines: []string{
			"Aquí Miguel encontró el Fantasma de las Funciones Perdidas,",
			"un espectro que había construido para la complejidad, no la claridad,",
			"eternamente atormentado por investigación que nunca ocurrió",
			"y la desesperación silenciosa de jornadas sin optimizar.",
		},
		Quotes: []string{
			"Agregué diecisiete dropdowns a un formulario simple...",
		},
	},
	{
		Index: 3,
		Title: "El Espejo de la Verdad",
		Lines: []string{
			"La cámara final reveló su secreto:",
			"no un espejo que muestra lo que fue, sino lo que puede ser.",
			"En su superficie: tu reflejo como el fundador",
			"que construye con el ritmo de Miguel, no el ruido del mercado.",
		},
		Quotes: []string{
			"Tú eres el algoritmo.",
		},
	},
	{
		Index: 4,
		Title: "Dos Senderos",
		Lines: []string{
			"La elección final de la cámara aguarda.",
			"Dos senderos se bifurcan en este bosque de terciopelo,",
			"uno para aprender los métodos de Miguel, otro para heredar su magia.",
			"Elige no con urgencia, sino con la certeza silenciosa de saber.",
		},
	},
	{
		Index: 5,
		Title: "Toma Lo Que Miguel Dejó Atrás",
		Lines: []string{
			"La claridad no se codifica, se conjura.",
			"Y Miguel conjura con terciopelo, no con hojas de cálculo.",
		},
		Checkout: true,
	},
}
