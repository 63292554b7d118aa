package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/web/templates/layout"
)

// HomeData holds data for the home page
type HomeData struct {
	layout.PageData
	Starships []*model.Starship
	Rolls     []*model.Roll
	// FeedURL is the event stream the page subscribes to, if any
	FeedURL string
}

// StarshipItem renders one registry entry
func StarshipItem(s *model.Starship) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<li class="starship" data-id="%s">%s</li>`,
			templ.EscapeString(string(s.ID)), templ.EscapeString(s.FullName()))
		return err
	})
}

// RollItem renders one roll history entry
func RollItem(r *model.Roll) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<li class="roll" data-sides="%d">d%d: %d</li>`, r.Sides, r.Sides, r.Value)
		return err
	})
}

// Home renders the starship registry and recent rolls
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<h1>Protocols</h1>`)

		b.WriteString(`<section id="starships"><h2>Starships</h2>`)
		if len(data.Starships) == 0 {
			b.WriteString(`<p class="empty">No starships registered.</p>`)
		}
		b.WriteString(`<ul id="starship-list">`)
		for _, s := range data.Starships {
			if err := StarshipItem(s).Render(ctx, &b); err != nil {
				return err
			}
		}
		b.WriteString(`</ul>`)
		b.WriteString(`<form method="post" action="/starships">` +
			`<input name="prefix" placeholder="Prefix">` +
			`<input name="name" placeholder="Name" required>` +
			`<button type="submit">Register</button></form></section>`)

		b.WriteString(`<section id="rolls"><h2>Recent rolls</h2>`)
		if len(data.Rolls) == 0 {
			b.WriteString(`<p class="empty">No rolls yet.</p>`)
		}
		b.WriteString(`<ol id="roll-list">`)
		for _, r := range data.Rolls {
			if err := RollItem(r).Render(ctx, &b); err != nil {
				return err
			}
		}
		b.WriteString(`</ol>`)
		b.WriteString(`<form method="post" action="/roll">` +
			`<input name="sides" type="number" value="6" min="1">` +
			`<input name="count" type="number" value="1" min="1">` +
			`<button type="submit">Roll</button></form></section>`)

		if data.FeedURL != "" {
			fmt.Fprintf(&b, `<script data-feed="%s">`+liveFeedScript+`</script>`, templ.EscapeString(data.FeedURL))
		}

		_, err := io.WriteString(w, b.String())
		return err
	})

	return layout.Base(data.PageData, body)
}

// liveFeedScript inserts streamed fragments into the matching list
const liveFeedScript = `(function(){` +
	`var s=document.currentScript,src=new EventSource(s.dataset.feed);` +
	`function add(id,prepend){return function(e){` +
	`var l=document.getElementById(id);` +
	`l.insertAdjacentHTML(prepend?"afterbegin":"beforeend",e.data);` +
	`var p=l.parentNode.querySelector("p.empty");if(p){p.remove();}};}` +
	`src.addEventListener("starship",add("starship-list",false));` +
	`src.addEventListener("rolls",add("roll-list",true));` +
	`})();`
