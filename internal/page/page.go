// Package page assembles the HTML documents this service serves: the hand
// replay page and the invite landing page. Templates are parsed once at
// init; handlers supply already-fetched data and receive a complete
// document. The replay snapshot JSON is produced by encoding/json, whose
// default HTML escaping makes it safe to embed verbatim in a script tag.
package page

import (
	"bytes"
	"html/template"
)

// ReplayParams feeds the replay page template.
type ReplayParams struct {
	ShareID     string
	Title       string
	Description string
	OGImageURL  string
	BaseURL     string
	ReplayJSON  string // snapshot JSON, embedded verbatim
}

// InviteParams feeds the invite landing page template.
type InviteParams struct {
	InviterID   string
	Token       string
	Title       string
	Description string
	OGImageURL  string
	BaseURL     string
}

var replayTmpl = template.Must(template.New("replay").Parse(replayPageTemplate))
var inviteTmpl = template.Must(template.New("invite").Parse(invitePageTemplate))

// ReplayHTML renders the shareable hand-replay document.
func ReplayHTML(p ReplayParams) (string, error) {
	var buf bytes.Buffer
	data := struct {
		ReplayParams
		CanonicalURL string
		Styles       template.CSS
		Snapshot     template.JS
	}{
		ReplayParams: p,
		CanonicalURL: p.BaseURL + "/hands/" + p.ShareID,
		Styles:       template.CSS(replayStyles),
		Snapshot:     template.JS(p.ReplayJSON),
	}
	if err := replayTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// InviteHTML renders the invite landing page.
func InviteHTML(p InviteParams) (string, error) {
	var buf bytes.Buffer
	data := struct {
		InviteParams
		CanonicalURL string
		Styles       template.CSS
	}{
		InviteParams: p,
		CanonicalURL: p.BaseURL + "/invite/" + p.InviterID,
		Styles:       template.CSS(inviteStyles),
	}
	if err := inviteTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const replayPageTemplate = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0, viewport-fit=cover" />
    <title>{{.Title}}</title>
    <meta name="description" content="{{.Description}}" />
    <meta property="og:title" content="{{.Title}}" />
    <meta property="og:description" content="{{.Description}}" />
    <meta property="og:image" content="{{.OGImageURL}}" />
    <meta property="og:url" content="{{.CanonicalURL}}" />
    <meta property="og:type" content="website" />
    <meta name="twitter:card" content="summary_large_image" />
    <meta name="twitter:title" content="{{.Title}}" />
    <meta name="twitter:description" content="{{.Description}}" />
    <meta name="twitter:image" content="{{.OGImageURL}}" />
    <link rel="canonical" href="{{.CanonicalURL}}" />
    <link rel="icon" href="{{.BaseURL}}/images/favicon.ico" />
    <style>{{.Styles}}</style>
  </head>
  <body>
    <div id="app">
      <div class="header">
        <img src="{{.BaseURL}}/images/logo.png" alt="Stack" width="110" />
        <span class="header-subtitle">Hand Replay</span>
      </div>
      <div class="sharer-info" id="sharerInfo"></div>
      <div class="table-container" id="table">
        <div class="felt"></div>
        <div class="center-content">
          <div class="logo-center">
            <img src="{{.BaseURL}}/images/logo.png" alt="Stack" width="60" height="60" />
          </div>
          <div class="board-cards" id="boardCards"></div>
          <div class="pot" id="pot">
            <span class="pot-label">Pot</span>
            <span class="pot-amount">$0.00</span>
          </div>
        </div>
      </div>
      <div class="controls">
        <button class="control-btn" id="replayBtn" type="button" aria-label="Replay hand">Replay</button>
      </div>
      <div class="replay-overlay" id="replayOverlay"></div>
      <div class="win-overlay" id="winOverlay">
        <div class="win-card">
          <div class="win-title" id="winTitle"></div>
          <div class="win-amount" id="winAmount"></div>
          <div class="win-description" id="winDescription"></div>
        </div>
      </div>
      <div class="cta-overlay" id="ctaOverlay">
        <div class="cta-backdrop"></div>
        <div class="cta-card">
          <div class="cta-handle"></div>
          <div class="cta-logo">
            <img src="{{.BaseURL}}/images/logo.png" alt="Stack" width="90" />
          </div>
          <div class="cta-title">Play poker hands like this on Stack</div>
          <div class="cta-sub">Practice against bots and improve your game with AI-powered analysis</div>
          <a class="cta-appstore" href="https://apps.apple.com/us/app/stack-poker-learn-train/id6745683972" target="_blank" rel="noopener noreferrer">Download on App Store</a>
          <a class="cta-link" href="{{.BaseURL}}">stackpoker.gg</a>
        </div>
      </div>
    </div>
    <script id="replayData" type="application/json">{{.Snapshot}}</script>
    <script src="/assets/wasm_exec.js"></script>
    <script>
      const go = new Go();
      WebAssembly.instantiateStreaming(fetch("/assets/replay.wasm"), go.importObject)
        .then((result) => go.run(result.instance));
    </script>
  </body>
</html>`

const invitePageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <meta property="og:title" content="{{.Title}}">
  <meta property="og:description" content="{{.Description}}">
  <meta property="og:image" content="{{.OGImageURL}}">
  <meta property="og:image:width" content="1200">
  <meta property="og:image:height" content="630">
  <meta property="og:type" content="website">
  <meta property="og:url" content="{{.CanonicalURL}}">
  <meta name="twitter:card" content="summary_large_image">
  <meta name="twitter:title" content="{{.Title}}">
  <meta name="twitter:description" content="{{.Description}}">
  <meta name="twitter:image" content="{{.OGImageURL}}">
  <meta name="theme-color" content="#0d5c3d">
  <style>{{.Styles}}</style>
</head>
<body>
  <div class="container">
    <img class="logo" src="{{.BaseURL}}/images/logo.png" alt="Stack" />
    <h1>{{.Title}}</h1>
    <p class="subtitle">{{.Description}}</p>
    <a class="download-btn" href="https://apps.apple.com/us/app/stack-poker-learn-train/id6745683972">Download Stack Poker</a>
    <p class="token-note" data-invite-token="{{.Token}}">Your invite from {{.InviterID}} is waiting in the app.</p>
  </div>
</body>
</html>`
