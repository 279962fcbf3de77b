package page

// Inline stylesheets for the served pages. Kept as Go constants so the
// handlers stay single-binary with no asset pipeline; the wasm engine
// toggles the class names referenced here.

const replayStyles = `
:root {
  --background: #0F1114;
  --surface: #1A1D24;
  --surface-raised: #252A33;
  --text-primary: #F0F2F5;
  --text-secondary: #9BA3B0;
  --positive: #4ADE80;
  --negative: #EF4444;
  --felt-color: #1A1D24;
  --rail-color: #252A33;
  --border-subtle: rgba(255, 255, 255, 0.08);
}
* { margin: 0; padding: 0; box-sizing: border-box; -webkit-tap-highlight-color: transparent; }
body {
  background: var(--background);
  color: var(--text-primary);
  font-family: -apple-system, 'SF Pro Display', BlinkMacSystemFont, system-ui, sans-serif;
  min-height: 100vh;
  overflow-x: hidden;
  -webkit-font-smoothing: antialiased;
}
#app { max-width: 100%; margin: 0 auto; padding: max(16px, env(safe-area-inset-top)) 16px 140px; position: relative; min-height: 100vh; }
.header { display: flex; flex-direction: column; align-items: center; gap: 8px; padding: 16px 0 20px; }
.header img { width: 90px; object-fit: contain; }
.header-subtitle { font-size: 13px; font-weight: 600; color: rgba(255,255,255,0.5); text-transform: uppercase; letter-spacing: 0.08em; }
.sharer-info { display: flex; align-items: center; justify-content: center; gap: 6px; font-size: 13px; color: rgba(255,255,255,0.7); margin: 0 auto 16px; padding: 6px 14px; background: rgba(255,255,255,0.06); border-radius: 20px; font-weight: 500; width: fit-content; }
.table-container { position: relative; width: 100%; max-width: 420px; aspect-ratio: 3 / 4; margin: 0 auto; }
.felt { position: absolute; inset: 8% 4%; background: var(--felt-color); border: 10px solid var(--rail-color); border-radius: 45%; box-shadow: inset 0 0 60px rgba(0,0,0,0.5); }
.center-content { position: absolute; top: 50%; left: 50%; transform: translate(-50%, -50%); display: flex; flex-direction: column; align-items: center; gap: 10px; }
.logo-center { opacity: 0.25; }
.board-cards { display: flex; gap: 4px; min-height: 48px; }
.board-placeholder { width: 32px; height: 46px; border: 1px dashed rgba(255,255,255,0.15); border-radius: 4px; }
.board-card { width: 32px; height: 46px; border-radius: 4px; background: #fff; color: #111; display: flex; flex-direction: column; align-items: center; justify-content: center; font-weight: 700; font-size: 13px; opacity: 0; transform: rotateY(90deg); transition: all 0.3s ease; }
.board-card.visible { opacity: 1; transform: rotateY(0); }
.board-card.hearts, .board-card.diamonds { color: #D6323C; }
.pot { display: none; align-items: center; gap: 6px; background: rgba(0,0,0,0.45); padding: 4px 12px; border-radius: 14px; font-size: 13px; }
.pot.visible { display: flex; }
.pot-label { color: var(--text-secondary); }
.pot-amount { font-weight: 700; }
.seat { position: absolute; transform: translate(-50%, -50%); display: flex; flex-direction: column; align-items: center; transition: opacity 0.3s ease; }
.seat.folded { opacity: 0.35; }
.seat.winner .seat-info { box-shadow: 0 0 0 2px var(--positive), 0 0 18px rgba(74,222,128,0.4); }
.seat-cards { display: flex; margin-bottom: -8px; }
.seat-cards .card-wrapper.second { margin-left: -10px; transform: rotate(7deg); }
.card, .card-back { width: 28px; height: 40px; border-radius: 4px; }
.card { background: #fff; color: #111; display: flex; flex-direction: column; align-items: center; justify-content: center; font-size: 11px; font-weight: 700; }
.card.hearts, .card.diamonds { color: #D6323C; }
.card-back { background: linear-gradient(135deg, #2C5F8A, #1A3A56); display: flex; align-items: center; justify-content: center; border: 1px solid rgba(255,255,255,0.2); }
.card-back img { width: 16px; opacity: 0.8; }
.seat-info { display: flex; align-items: center; gap: 6px; background: var(--surface-raised); border: 1px solid var(--border-subtle); border-radius: 12px; padding: 4px 10px; position: relative; }
.seat-emoji { font-size: 16px; }
.seat-details { display: flex; flex-direction: column; }
.seat-name { font-size: 11px; font-weight: 600; white-space: nowrap; }
.you-badge { margin-left: 4px; font-size: 8px; font-weight: 800; background: var(--positive); color: #062814; padding: 1px 4px; border-radius: 4px; vertical-align: middle; }
.seat-position { font-size: 9px; color: var(--text-secondary); }
.seat-stack { font-size: 11px; font-weight: 700; font-variant-numeric: tabular-nums; }
.seat-stack.stack-updated { color: var(--positive); }
.seat-stack.stack-loss { color: var(--negative); }
.seat-dealer { position: absolute; top: -7px; right: -7px; width: 16px; height: 16px; border-radius: 50%; background: #fff; color: #111; font-size: 9px; font-weight: 800; display: flex; align-items: center; justify-content: center; }
.hero-seat .seat-info { border-color: rgba(74,222,128,0.5); }
.bet-chip { position: absolute; transform: translate(-50%, -50%); display: none; align-items: center; gap: 4px; }
.bet-chip.visible { display: flex; }
.chip { border-radius: 50%; display: flex; align-items: center; justify-content: center; }
.chip-face { border-radius: 50%; }
.chip-stacks { display: flex; }
.chip-column { position: relative; width: 18px; height: 18px; }
.chip-item { position: absolute; left: 0; }
.chip-label { font-size: 11px; font-weight: 700; background: rgba(0,0,0,0.55); padding: 2px 6px; border-radius: 8px; }
.action-indicator { position: absolute; top: -26px; left: 50%; transform: translateX(-50%); background: var(--surface-raised); border: 1px solid var(--border-subtle); border-radius: 10px; padding: 3px 10px; font-size: 11px; font-weight: 700; white-space: nowrap; opacity: 0; transition: opacity 0.15s ease; pointer-events: none; z-index: 5; }
.action-indicator.visible { opacity: 1; }
.controls { display: flex; justify-content: center; margin-top: 18px; }
.control-btn { background: var(--surface-raised); color: var(--text-primary); border: 1px solid var(--border-subtle); border-radius: 22px; padding: 10px 28px; font-size: 14px; font-weight: 600; cursor: pointer; }
.control-btn:active { transform: scale(0.97); }
.replay-overlay { position: absolute; inset: 0; display: none; }
.replay-overlay.visible { display: block; }
.win-overlay { position: fixed; top: 18%; left: 50%; transform: translateX(-50%) scale(0.9); opacity: 0; pointer-events: none; transition: all 0.3s ease; z-index: 20; }
.win-overlay.visible { opacity: 1; transform: translateX(-50%) scale(1); }
.win-card { background: var(--surface-raised); border: 1px solid var(--border-subtle); border-radius: 16px; padding: 18px 32px; text-align: center; box-shadow: 0 16px 40px rgba(0,0,0,0.5); }
.win-title { font-size: 15px; font-weight: 700; margin-bottom: 4px; }
.win-amount { font-size: 24px; font-weight: 800; color: var(--positive); }
.win-amount.loss { color: var(--negative); }
.win-description { font-size: 12px; color: var(--text-secondary); margin-top: 4px; }
.cta-overlay { position: fixed; inset: 0; display: flex; align-items: flex-end; justify-content: center; opacity: 0; pointer-events: none; transition: opacity 0.3s ease; z-index: 30; }
.cta-overlay.visible { opacity: 1; pointer-events: auto; }
.cta-backdrop { position: absolute; inset: 0; background: rgba(0,0,0,0.6); }
.cta-card { position: relative; width: 100%; max-width: 420px; background: var(--surface); border-radius: 20px 20px 0 0; padding: 18px 24px max(24px, env(safe-area-inset-bottom)); display: flex; flex-direction: column; align-items: center; gap: 12px; }
.cta-handle { width: 36px; height: 4px; border-radius: 2px; background: rgba(255,255,255,0.2); }
.cta-title { font-size: 17px; font-weight: 700; text-align: center; }
.cta-sub { font-size: 13px; color: var(--text-secondary); text-align: center; }
.cta-appstore { display: flex; align-items: center; gap: 8px; background: #fff; color: #111; font-weight: 700; font-size: 14px; border-radius: 12px; padding: 12px 24px; text-decoration: none; }
.cta-link { font-size: 13px; color: var(--text-secondary); text-decoration: none; }
`

const inviteStyles = `
* { margin: 0; padding: 0; box-sizing: border-box; }
html, body { height: 100%; }
body {
  font-family: 'Inter', -apple-system, BlinkMacSystemFont, system-ui, sans-serif;
  background: linear-gradient(180deg, #0d5c3d 0%, #094d33 50%, #062d1f 100%);
  min-height: 100vh;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  padding: 24px;
  color: #fff;
  -webkit-font-smoothing: antialiased;
}
.container { max-width: 400px; width: 100%; text-align: center; }
.logo { width: 80px; margin-bottom: 24px; }
h1 { font-size: 26px; font-weight: 700; margin-bottom: 12px; }
.subtitle { font-size: 15px; color: rgba(255,255,255,0.8); margin-bottom: 28px; }
.download-btn { display: inline-block; background: #fff; color: #0d5c3d; font-weight: 700; font-size: 16px; padding: 14px 32px; border-radius: 14px; text-decoration: none; }
.token-note { margin-top: 20px; font-size: 12px; color: rgba(255,255,255,0.55); }
`
