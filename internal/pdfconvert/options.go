package pdfconvert

// Margin holds CSS lengths for each page edge.
type Margin struct {
	Top    string `json:"top,omitempty"`
	Right  string `json:"right,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Left   string `json:"left,omitempty"`
}

// Options are the layout options forwarded to the rendering service.
type Options struct {
	Format          string  `json:"format,omitempty"`
	Margin          *Margin `json:"margin,omitempty"`
	Scale           float64 `json:"scale,omitempty"`
	PrintBackground bool    `json:"printBackground"`
	WaitUntil       string  `json:"waitUntil,omitempty"`
	TimeoutMs       int     `json:"timeout,omitempty"`
}

// CVLayout is the fixed layout used for CV downloads: A4, half-inch margins,
// 80% scale, backgrounds printed, rendered once the network is idle.
func CVLayout() Options {
	return Options{
		Format: "A4",
		Margin: &Margin{
			Top:    "0.5in",
			Right:  "0.5in",
			Bottom: "0.5in",
			Left:   "0.5in",
		},
		Scale:           0.8,
		PrintBackground: true,
		WaitUntil:       "networkidle0",
		TimeoutMs:       30000,
	}
}

// WithDefaults fills unset fields from CVLayout.
func (o Options) WithDefaults() Options {
	def := CVLayout()
	if o.Format == "" {
		o.Format = def.Format
	}
	if o.Margin == nil {
		o.Margin = def.Margin
	}
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if o.WaitUntil == "" {
		o.WaitUntil = def.WaitUntil
	}
	if o.TimeoutMs <= 0 {
		o.TimeoutMs = def.TimeoutMs
	}
	return o
}
