package core

import (
	"html/template"
)

type ErrorData struct {
	Message string
	IsDev   bool
}

// ErrorTemplate is the document the preview server renders when it
// cannot serve a built page.
var ErrorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Error</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 720px; margin: 48px auto; padding: 0 16px; }
        h1 { color: #c0392b; }
        pre { background: #f4f4f4; padding: 12px; border-radius: 4px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>Preview Error</h1>
    {{if .IsDev}}
    <pre>{{.Message}}</pre>
    {{else}}
    <p>The preview server could not serve this page.</p>
    {{end}}
</body>
</html>`))
