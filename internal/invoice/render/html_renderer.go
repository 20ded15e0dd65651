package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/document"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Document.Title}}</title>
  <style>
    :root {
      --accent: {{.AccentHex}};
      --font: {{.FontStack}};
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: var(--font);
      color: #1a1a1a;
      background: #ffffff;
    }
    .page {
      max-width: 640px;
      margin: 0 auto;
      aspect-ratio: 210 / 297;
    }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      margin-bottom: 24px;
    }
    .header img { max-height: 70px; }
    .title {
      color: var(--accent);
      font-size: {{.TitleSize}}px;
      font-weight: bold;
      text-transform: uppercase;
    }
    .meta { text-align: right; font-size: {{.SmallSize}}px; }
    .meta .label {
      color: #808080;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: {{.LabelSize}}px;
    }
    .identity {
      display: flex;
      border-bottom: 1px solid var(--accent);
      padding-bottom: 16px;
      margin-bottom: 16px;
    }
    .identity .party { flex: 1; font-size: {{.SmallSize}}px; }
    .identity .party .label { color: var(--accent); font-size: {{.LabelSize}}px; }
    .identity .party .name { font-weight: bold; font-size: {{.BodySize}}px; }
    .photo { margin-bottom: 16px; }
    .photo img { max-width: 100%; max-height: 200px; }
    table { width: 100%; border-collapse: collapse; font-size: {{.SmallSize}}px; }
    th {
      color: var(--accent);
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: {{.LabelSize}}px;
      border-bottom: 1px solid var(--accent);
      padding: 6px 4px;
    }
    td { padding: 6px 4px; border-bottom: 1px solid #e5e5e5; }
    th, td { text-align: right; }
    th:first-child, td:first-child { text-align: left; }
    td .details { color: #808080; font-size: {{.LabelSize}}px; }
    .totals { margin-top: 12px; text-align: right; font-size: {{.SmallSize}}px; }
    .totals .grand { color: var(--accent); font-weight: bold; font-size: {{.BodySize}}px; }
    .paid { color: var(--accent); font-weight: bold; margin-top: 8px; }
    .notes { margin-top: 16px; color: #808080; font-size: {{.SmallSize}}px; }
  </style>
</head>
<body>
  <div class="page">
    <div class="header">
      <div>
        {{if .LogoDataURI}}<img src="{{.LogoDataURI}}" alt="Logo" />{{end}}
      </div>
      <div class="meta">
        <div class="title">{{.Document.Kind.Label}}</div>
        <div><span class="label">Number</span> #{{.Document.Number}}</div>
        <div><span class="label">Issued</span> {{.Document.IssuedAt}}</div>
        {{if .Document.DueAt}}<div><span class="label">Due</span> {{.Document.DueAt}}</div>{{end}}
      </div>
    </div>

    <div class="identity">
      <div class="party">
        <div class="label">FROM</div>
        {{template "party" .Document.From}}
      </div>
      <div class="party">
        <div class="label">BILL TO</div>
        {{template "party" .Document.BillTo}}
      </div>
    </div>

    {{if .PhotoDataURI}}
    <div class="photo"><img src="{{.PhotoDataURI}}" alt="Attachment" /></div>
    {{end}}

    <table>
      <thead>
        <tr><th>Item</th><th>Price</th><th>Amount</th><th>Quantity</th></tr>
      </thead>
      <tbody>
        {{range .Document.Lines}}
        <tr>
          <td>{{.Name}}{{if .Details}}<div class="details">{{.Details}}</div>{{end}}</td>
          <td>{{$.Document.Amount .Price}}</td>
          <td>{{$.Document.Amount .Final}}</td>
          <td>{{.Quantity}}{{if .UnitType}} {{.UnitType}}{{end}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <div><span class="label">SUBTOTAL</span> {{.Document.Amount .Document.Totals.Subtotal}}</div>
      <div class="grand">TOTAL {{.Document.Amount .Document.Totals.GrandTotal}}</div>
      {{if .Document.Paid}}<div class="paid">PAID{{if .Document.PayMethod}} · {{.Document.PayMethod}}{{end}}</div>{{end}}
    </div>

    {{if .Document.Notes}}<div class="notes">{{.Document.Notes}}</div>{{end}}
  </div>
</body>
</html>

{{define "party"}}
{{if .Name}}<div class="name">{{.Name}}</div>{{end}}
{{if .Email}}<div>{{.Email}}</div>{{end}}
{{if .Phone}}<div>{{.Phone}}</div>{{end}}
{{if .Address}}<div>{{.Address}}</div>{{end}}
{{end}}
`

var fontStackFilter = regexp.MustCompile(`^[A-Za-z0-9 ,\-"]+$`)

// fontStacks maps resolved renderer fonts to CSS stacks.
var fontStacks = map[string]string{
	"Helvetica": `Helvetica, Arial, sans-serif`,
	"Times":     `"Times New Roman", Times, serif`,
	"Courier":   `"Courier New", Courier, monospace`,
}

type htmlView struct {
	Document     document.Document
	AccentHex    template.CSS
	FontStack    template.CSS
	LogoDataURI  template.URL
	PhotoDataURI template.URL
	TitleSize    float64
	BodySize     float64
	SmallSize    float64
	LabelSize    float64
}

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	return &HTMLRenderer{
		tpl: template.Must(template.New("document").Parse(documentHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	view := htmlView{
		Document:     input.Document,
		AccentHex:    template.CSS(hexColor(input.Theme.Accent)),
		FontStack:    template.CSS(sanitizeFontStack(input.Theme.Fonts.Regular)),
		LogoDataURI:  dataURI(input.Document.Logo),
		PhotoDataURI: dataURI(input.Document.Photo),
		TitleSize:    scalePx(16, input.Theme.SizeIncrement),
		BodySize:     scalePx(9, input.Theme.SizeIncrement),
		SmallSize:    scalePx(8, input.Theme.SizeIncrement),
		LabelSize:    scalePx(6, input.Theme.SizeIncrement),
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// scalePx converts authored point sizes to preview pixels, honoring the
// large-size increment the same way the layout engine does.
func scalePx(base, increment float64) float64 {
	return (base + increment) * 1.5
}

func hexColor(c theme.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func sanitizeFontStack(font string) string {
	if stack, ok := fontStacks[font]; ok {
		return stack
	}
	if fontStackFilter.MatchString(strings.TrimSpace(font)) {
		return font
	}
	return fontStacks["Helvetica"]
}

func dataURI(data []byte) template.URL {
	if len(data) == 0 {
		return ""
	}
	mime := sniffImageMIME(data)
	if mime == "" {
		return ""
	}
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data))
}

func sniffImageMIME(data []byte) string {
	switch {
	case len(data) > 8 && bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "image/png"
	case len(data) > 3 && bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return "image/jpeg"
	}
	return ""
}
