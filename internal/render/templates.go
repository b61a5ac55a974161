package render

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// summaryFor returns the accordion sections for the two summary tabs.
func summaryFor(tab string) []SummarySection {
	switch tab {
	case "summary":
		return prioritiesSummary
	case "gpxpress-summary":
		return gpxpressSummary
	default:
		return nil
	}
}

var prioritiesSummary = []SummarySection{
	{
		Title: "Technology",
		Body:  "Salesforce platform work: AI tooling rollout, Market and SC Leadership dashboard refreshes, Opportunity page updates and cross-reference automation.",
	},
	{
		Title: "Strategy",
		Body:  "Execution planning out of the spring workshop: DA data visibility, compliance expansion, cascading territory planning and NAM expectations in Salesforce.",
	},
	{
		Title: "Content",
		Body:  "Sales content library management, NSM design support and SharePoint consolidation across the selling organization.",
	},
	{
		Title: "Training",
		Body:  "Foundational and role-specific programs, supervisor coaching guides, negotiation simulations and the AI tools reinforcement series.",
	},
	{
		Title: "GPXpress",
		Body:  "Service platform roadmap: mobile app 2.0, online re-design, Genesys and Einstein enhancements, and the PRO/Retail chat upgrade.",
	},
	{
		Title: "L&D",
		Body:  "Learning and development delivery across onboarding cadences, academy programs and the EMPOWER growth app.",
	},
}

var gpxpressSummary = []SummarySection{
	{
		Title: "In Flight",
		Body:  "Mobile App 2.0 (samples, ProSearch, push notifications), Online Re-Design and the Training & Onboarding Reset are actively underway for the first half.",
	},
	{
		Title: "Platform Enhancements",
		Body:  "Genesys and Einstein enhancements continue through Q1-Q2, with AI/Agentforce work targeted for Q2 alongside the PRO/Retail chat upgrade.",
	},
	{
		Title: "Process",
		Body:  "Drop ship intake re-design and interaction elevation aim to reduce manual workload and convert service touchpoints into leads.",
	},
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body { font-family: 'Segoe UI', Arial, sans-serif; background: #F3F4F6; color: #1F2937; }
  .header { background: #FFFFFF; border-bottom: 1px solid #E5E7EB; padding: 1rem 1.5rem; display: flex; align-items: center; justify-content: space-between; }
  .header h1 { font-size: 1.25rem; }
  .header .subtitle { color: #6B7280; font-size: 0.85rem; }
  .header-buttons { display: flex; gap: 0.5rem; }
  .header-buttons form { display: inline; }
  .btn { background: #2563EB; color: #fff; border: none; border-radius: 6px; padding: 0.45rem 0.9rem; font-size: 0.85rem; cursor: pointer; text-decoration: none; display: inline-block; }
  .btn.secondary { background: #4B5563; }
  .tabs { background: #FFFFFF; border-bottom: 1px solid #E5E7EB; padding: 0 1.5rem; display: flex; gap: 0.25rem; }
  .tab { padding: 0.6rem 0.9rem; font-size: 0.85rem; color: #6B7280; text-decoration: none; border-bottom: 2px solid transparent; }
  .tab.active { color: #2563EB; border-bottom-color: #2563EB; font-weight: 600; }
  .fetch-error { background: #FEF2F2; border: 1px solid #FECACA; color: #DC2626; margin: 1rem 1.5rem 0; padding: 0.75rem 1rem; border-radius: 6px; font-size: 0.85rem; }
  .legend { display: flex; gap: 1rem; padding: 0.75rem 1.5rem; font-size: 0.75rem; color: #4B5563; flex-wrap: wrap; }
  .legend-item { display: flex; align-items: center; gap: 0.35rem; }
  .swatch { width: 10px; height: 10px; border-radius: 3px; display: inline-block; }
  .swatch.primary { background: #2563EB; }
  .swatch.secondary { background: #7C3AED; }
  .swatch.considering { background: #D97706; }
  .swatch.ongoing { background: #059669; }
  .swatch.in-progress { background: #2563EB; }
  .swatch.on-hold { background: #9CA3AF; }
  .swatch.not-started { border: 2px dashed #9CA3AF; background: transparent; }
  .content { padding: 0 1.5rem 2rem; }
  .priority-group { background: #FFFFFF; border: 1px solid #E5E7EB; border-radius: 8px; margin-top: 1rem; padding: 0.75rem 1rem; }
  .priority-header { display: flex; align-items: center; gap: 0.5rem; padding: 0.25rem 0 0.5rem; }
  .priority-header-with-timeline { display: grid; grid-template-columns: 28% 52% 20%; align-items: center; padding: 0.25rem 0 0.5rem; }
  .priority-dot { width: 12px; height: 12px; border-radius: 50%; display: inline-block; }
  .priority-dot.primary { background: #2563EB; }
  .priority-dot.secondary { background: #7C3AED; }
  .priority-dot.considering { background: #D97706; }
  .priority-dot.ongoing { background: #059669; }
  .priority-title { font-weight: 600; font-size: 0.9rem; margin-left: 0.5rem; }
  .timeline-months { display: grid; grid-template-columns: repeat(6, 1fr); font-size: 0.7rem; color: #9CA3AF; text-align: center; }
  .notes-header { font-size: 0.7rem; color: #9CA3AF; text-align: left; padding-left: 0.75rem; }
  .project-item { display: grid; grid-template-columns: 28% 52% 20%; align-items: center; border-top: 1px solid #F3F4F6; padding: 0.4rem 0; }
  .project-name { font-size: 0.85rem; font-weight: 500; }
  .project-owner { font-size: 0.7rem; color: #6B7280; margin-left: 0.4rem; }
  .dependency-flag { font-size: 0.65rem; color: #D97706; margin-left: 0.35rem; }
  .capability-tags { margin-top: 0.15rem; }
  .capability-tag { display: inline-block; font-size: 0.65rem; color: #4B5563; background: #F3F4F6; border-radius: 4px; padding: 0.1rem 0.4rem; margin-right: 0.25rem; }
  .project-timeline { position: relative; height: 18px; }
  .timeline-grid { position: absolute; inset: 0; display: grid; grid-template-columns: repeat(6, 1fr); }
  .timeline-grid span { border-left: 1px solid #F3F4F6; }
  .timeline-bar { position: absolute; top: 4px; height: 10px; border-radius: 5px; }
  .timeline-bar.primary { background: #2563EB; }
  .timeline-bar.secondary { background: #7C3AED; }
  .timeline-bar.considering { background: #D97706; }
  .timeline-bar.ongoing { background: #059669; }
  .timeline-bar.on-hold { opacity: 0.35; }
  .timeline-bar.not-started { opacity: 0.55; background-image: repeating-linear-gradient(45deg, transparent, transparent 4px, rgba(255,255,255,0.5) 4px, rgba(255,255,255,0.5) 8px); }
  .project-notes { font-size: 0.7rem; color: #6B7280; padding-left: 0.75rem; }
  .empty-state { text-align: center; color: #6B7280; padding: 3rem 1rem; font-size: 0.9rem; }
  .info-box { background: #FFFBEB; border: 1px solid #FDE68A; border-radius: 8px; margin-top: 1rem; padding: 0.75rem 1rem; font-size: 0.8rem; }
  .info-box h3 { font-size: 0.8rem; color: #92400E; margin-bottom: 0.4rem; }
  .info-box ul { padding-left: 1.1rem; }
  .info-empty { color: #92400E; }
  .accordion { background: #FFFFFF; border: 1px solid #E5E7EB; border-radius: 8px; margin-top: 1rem; }
  .accordion summary { padding: 0.75rem 1rem; font-weight: 600; font-size: 0.9rem; cursor: pointer; }
  .accordion p { padding: 0 1rem 0.75rem; font-size: 0.85rem; color: #4B5563; }
</style>
</head>
<body>
<div class="header">
  <div>
    <h1>{{.Title}}</h1>
    <div class="subtitle">{{.Subtitle}}</div>
  </div>
  {{if not .ExportMode}}
  <div class="header-buttons">
    <form method="POST" action="/api/refresh"><button class="btn secondary" type="submit">Refresh</button></form>
    <a class="btn" href="/export.pdf">Download PDF</a>
  </div>
  {{end}}
</div>
{{if not .ExportMode}}
<nav class="tabs">
  {{range .Tabs}}<a class="tab{{if .Active}} active{{end}}" href="/?tab={{.Tab}}">{{.Title}}</a>{{end}}
</nav>
{{end}}
{{if .FetchErr}}<div class="fetch-error">Error: {{.FetchErr}}. Please check your Coda API configuration.</div>{{end}}
{{if .Summary}}
<div class="content">
  {{range .Summary}}
  <details class="accordion" open>
    <summary>{{.Title}}</summary>
    <p>{{.Body}}</p>
  </details>
  {{end}}
</div>
{{else}}
{{if or .PriorityLegend .StatusLegend}}
<div class="legend">
  {{range .PriorityLegend}}<span class="legend-item"><span class="swatch {{.Class}}"></span>{{.Label}}</span>{{end}}
  {{range .StatusLegend}}<span class="legend-item"><span class="swatch {{.Class}}"></span>{{.Label}}</span>{{end}}
</div>
{{end}}
<div class="content">
  {{if .EmptyMessage}}
  <div class="empty-state">{{.EmptyMessage}}</div>
  {{end}}
  {{range .Groups}}
  <div class="priority-group">
    {{if .First}}
    <div class="priority-header-with-timeline">
      <div><span class="priority-dot {{.Dot}}"></span><span class="priority-title">{{.Label}}</span></div>
      <div class="timeline-months"><span>JAN</span><span>FEB</span><span>MAR</span><span>APR</span><span>MAY</span><span>JUN</span></div>
      <div class="notes-header">NOTES</div>
    </div>
    {{else}}
    <div class="priority-header">
      <span class="priority-dot {{.Dot}}"></span><span class="priority-title">{{.Label}}</span>
    </div>
    {{end}}
    {{range .Items}}
    <div class="project-item">
      <div class="project-info">
        <span class="project-name" title="{{.DateRange}}">{{.Name}}</span>
        {{if .Owner}}<span class="project-owner">{{.Owner}}</span>{{end}}
        {{if .HasDependency}}<span class="dependency-flag" title="Has external dependency">&#9888;</span>{{end}}
        {{if .Capabilities}}
        <div class="capability-tags">
          {{range .Capabilities}}<span class="capability-tag">{{.}}</span>{{end}}
        </div>
        {{end}}
      </div>
      <div class="project-timeline">
        <div class="timeline-grid"><span></span><span></span><span></span><span></span><span></span><span></span></div>
        <div class="timeline-bar {{.Dot}} {{.StatusClass}}" style="left: {{printf "%.2f" .Bar.OffsetPct}}%; width: {{printf "%.2f" .Bar.WidthPct}}%"></div>
      </div>
      <div class="project-notes-area">
        {{if .Notes}}<div class="project-notes">{{.Notes}}</div>{{end}}
      </div>
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .HasInfoBox}}
  <div class="info-box">
    <h3>Deprioritized for H1</h3>
    {{if .OutOfScope}}
    <ul>
      {{range .OutOfScope}}<li><strong>{{.Project}}</strong>{{if .Notes}} - {{.Notes}}{{end}}</li>{{end}}
    </ul>
    {{else}}
    <div class="info-empty">None currently out of scope.</div>
    {{end}}
  </div>
  {{end}}
</div>
{{end}}
</body>
</html>`
