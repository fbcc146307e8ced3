package core

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// RenderString, verilen içeriği (content) sağlanan veri (data) ile işler.
// Config values like the interpreter path go through this, so installs can
// be located via Sprig's env function ({{ env "MAYA_LOCATION" }}/bin/mayapy).
func RenderString(content string, data interface{}) (string, error) {
	// missingkey=zero allows optional variables (returning nil/zero), which works with Sprig's 'default'.
	tmpl, err := template.New("warden").Funcs(sprig.TxtFuncMap()).Option("missingkey=zero").Parse(content)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
