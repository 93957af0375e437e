package export

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; background: #f6f8fa; color: #24292e; }
  header { background: #24292e; color: #fff; padding: 24px 32px; }
  header h1 { margin: 0; font-size: 22px; }
  header p { margin: 6px 0 0; color: #8b949e; font-size: 13px; }
  main { max-width: 900px; margin: 0 auto; padding: 24px 32px; }
  h2 { text-transform: capitalize; border-bottom: 1px solid #d0d7de; padding-bottom: 6px; margin-top: 36px; }
  article { background: #fff; border: 1px solid #d0d7de; border-radius: 6px; padding: 16px 20px; margin: 16px 0; }
  article .meta { font-size: 12px; color: #57606a; margin-bottom: 8px; }
  article .tags span { display: inline-block; background: #ddf4ff; color: #0969da; border-radius: 10px; padding: 1px 8px; font-size: 11px; margin-right: 4px; }
  article .context { border-left: 3px solid #d0d7de; padding-left: 12px; color: #57606a; font-size: 13px; }
  pre { background: #f6f8fa; border-radius: 6px; padding: 12px; overflow-x: auto; }
  code { font-family: 'SFMono-Regular', Consolas, monospace; font-size: 13px; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>{{.Total}} entries &middot; generated {{.GeneratedAt}}</p>
</header>
<main>
{{range .Sections}}
  <h2>{{.Type}}</h2>
  {{range .Entries}}
  <article>
    <div class="meta">
      {{.Entry.Status}}{{if .Entry.QualityScore}} &middot; quality {{printf "%.1f" .Entry.QualityScore}}{{end}} &middot; used {{.Entry.UsageCount}} times
    </div>
    {{if .Entry.Tags}}<div class="tags">{{range .Entry.Tags}}<span>{{.}}</span>{{end}}</div>{{end}}
    <div class="content">{{.Content}}</div>
    {{if .Context}}<div class="context">{{.Context}}</div>{{end}}
  </article>
  {{end}}
{{end}}
</main>
</body>
</html>
`
