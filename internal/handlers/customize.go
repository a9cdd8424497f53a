// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/sectioncss/internal/auth"
	"github.com/thatcatcamp/sectioncss/internal/cssprop"
	"github.com/thatcatcamp/sectioncss/internal/customizer"
	"github.com/thatcatcamp/sectioncss/internal/middleware"
	"go.uber.org/zap"
)

// settingField is the form map name; inputs are named setting[<key>]
const settingField = "setting"

// CustomizeFormHandler renders every registered section as a fieldset
func (h *Handlers) CustomizeFormHandler(c *gin.Context) {
	admin, _ := auth.CurrentAdmin(c)
	username := ""
	if admin != nil {
		username = admin.Username
	}

	var flash string
	if saved := c.Query("saved"); saved != "" {
		flash = `<p class="notice">Saved ` + h.clean(saved) + ` setting(s)</p>`
	}
	if rejected := c.Query("rejected"); rejected != "" && rejected != "0" {
		flash += `<p class="error">` + h.clean(rejected) + ` value(s) were rejected</p>`
	}

	var b strings.Builder
	for _, s := range h.manager.Sections() {
		if len(s.Controls) == 0 {
			continue
		}
		b.WriteString(`<fieldset class="card"><legend>` + h.clean(s.Title) + `</legend>`)
		for _, ctrl := range s.Controls {
			b.WriteString(h.renderControl(ctrl, h.manager.Get(ctrl.Key)))
		}
		b.WriteString(`</fieldset>`)
	}

	page := `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Customize - sectioncss</title>
    <style>` + GetAdminCSS() + `</style>
</head>
<body>
    <header class="topbar">
        <span>Customizer</span>
        <form method="POST" action="/admin/logout" class="logout">
            ` + middleware.GetCSRFTokenHTML(c) + `
            <span>` + h.clean(username) + `</span>
            <button type="submit" class="link">Log out</button>
        </form>
    </header>
    <main>
        ` + flash + `
        <form method="POST" action="/admin/customize">
            ` + middleware.GetCSRFTokenHTML(c) + `
            ` + b.String() + `
            <button type="submit" class="btn">Save</button>
        </form>
    </main>
</body>
</html>`

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (h *Handlers) renderControl(ctrl cssprop.Control, value string) string {
	name := settingField + "[" + h.clean(ctrl.Key) + "]"
	id := "ctl-" + h.clean(ctrl.Key)
	label := `<label for="` + id + `">` + h.clean(ctrl.Label) + `</label>`

	switch ctrl.Type {
	case cssprop.ControlSelect:
		var opts strings.Builder
		for _, o := range ctrl.Choices {
			selected := ""
			if o.Token == value {
				selected = " selected"
			}
			fmt.Fprintf(&opts, `<option value="%s"%s>%s</option>`, h.clean(o.Token), selected, h.clean(o.Label))
		}
		return `<div class="field">` + label + `<select id="` + id + `" name="` + name + `">` + opts.String() + `</select></div>`
	case cssprop.ControlColor:
		return `<div class="field">` + label + `<input type="text" class="color" id="` + id + `" name="` + name +
			`" value="` + h.clean(value) + `" placeholder="#rrggbb"></div>`
	default:
		return `<div class="field">` + label + `<input type="text" id="` + id + `" name="` + name +
			`" value="` + h.clean(value) + `"></div>`
	}
}

// CustomizeSaveHandler saves the submitted values that differ from the
// current ones. Keys nobody registered are ignored.
func (h *Handlers) CustomizeSaveHandler(c *gin.Context) {
	submitted := c.PostFormMap(settingField)

	registered := make(map[string]bool)
	for _, s := range h.manager.Settings() {
		registered[s.Key] = true
	}

	changes := make(map[string]string)
	for key, value := range submitted {
		if !registered[key] {
			continue
		}
		value = strings.TrimSpace(value)
		if value == h.manager.Get(key) {
			continue
		}
		changes[key] = value
	}

	ctx := c.Request.Context()
	if admin, ok := auth.CurrentAdmin(c); ok {
		ctx = customizer.WithActor(ctx, admin.Username)
	}

	saved, rejected, err := h.manager.SaveAll(ctx, changes)
	if err != nil {
		h.log.Error("Failed to save settings", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to save settings")
		return
	}
	if len(rejected) > 0 {
		h.log.Info("Rejected setting values", zap.Strings("keys", rejected))
	}

	c.Redirect(http.StatusFound, "/admin/customize?saved="+strconv.Itoa(saved)+"&rejected="+strconv.Itoa(len(rejected)))
}
