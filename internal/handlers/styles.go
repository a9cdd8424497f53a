// SPDX-License-Identifier: MIT
package handlers

const (
	ColorBgPrimary   = "#FAFAF8"
	ColorBgCard      = "#FFFFFF"
	ColorTextPrimary = "#2D2D2D"
	ColorTextSecond  = "#6B7280"
	ColorAccent      = "#2E8B9E"
	ColorSuccess     = "#10B981"
	ColorDanger      = "#EF4444"
	ColorBorder      = "#E5E5E3"
)

// GetAdminCSS returns the stylesheet for the login and customize pages
func GetAdminCSS() string {
	return `
:root {
	--color-bg-primary: ` + ColorBgPrimary + `;
	--color-bg-card: ` + ColorBgCard + `;
	--color-text-primary: ` + ColorTextPrimary + `;
	--color-text-secondary: ` + ColorTextSecond + `;
	--color-accent: ` + ColorAccent + `;
	--color-success: ` + ColorSuccess + `;
	--color-danger: ` + ColorDanger + `;
	--color-border: ` + ColorBorder + `;
	--font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	--spacing-sm: 8px;
	--spacing-base: 16px;
	--spacing-md: 24px;
	--radius-sm: 4px;
	--radius-base: 6px;
}

* { box-sizing: border-box; }

body {
	font-family: var(--font-family);
	background: var(--color-bg-primary);
	color: var(--color-text-primary);
	margin: 0;
	line-height: 1.5;
}

h1 { font-size: 24px; margin: 0 0 var(--spacing-base); }

a { color: var(--color-accent); text-decoration: none; }

.logout { display: flex; gap: var(--spacing-sm); align-items: center; }
.logout .link { background: none; border: none; color: var(--color-accent); cursor: pointer; font: inherit; padding: 0; }

.topbar {
	display: flex;
	justify-content: space-between;
	padding: var(--spacing-base) var(--spacing-md);
	background: var(--color-bg-card);
	border-bottom: 1px solid var(--color-border);
	font-weight: 600;
}

main {
	max-width: 900px;
	margin: 0 auto;
	padding: var(--spacing-md);
}

.card {
	background: var(--color-bg-card);
	border: 1px solid var(--color-border);
	border-radius: var(--radius-base);
	padding: var(--spacing-md);
	margin: 0 0 var(--spacing-md);
}

.login { max-width: 360px; margin: 80px auto; }

legend { font-weight: 600; padding: 0 var(--spacing-sm); }

.field {
	display: grid;
	grid-template-columns: 220px 1fr;
	gap: var(--spacing-sm);
	align-items: center;
	margin-bottom: var(--spacing-sm);
}

label { font-size: 14px; color: var(--color-text-secondary); }

.login label, .login input { display: block; width: 100%; }

input, select {
	font-family: inherit;
	font-size: 14px;
	padding: var(--spacing-sm);
	border: 1px solid var(--color-border);
	border-radius: var(--radius-sm);
	margin-bottom: var(--spacing-sm);
}

input:focus, select:focus { outline: none; border-color: var(--color-accent); }

input.color { font-family: monospace; max-width: 140px; }

.btn {
	background: var(--color-accent);
	color: white;
	padding: var(--spacing-sm) var(--spacing-md);
	border: none;
	border-radius: var(--radius-base);
	font-size: 14px;
	font-weight: 600;
	cursor: pointer;
}

.btn:hover { opacity: 0.9; }

.notice { color: var(--color-success); font-weight: 600; }
.error { color: var(--color-danger); font-weight: 600; }

@media (max-width: 600px) {
	.field { grid-template-columns: 1fr; }
}
`
}
