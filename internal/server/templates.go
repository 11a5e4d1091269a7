package server

import "html/template"

var templates = template.Must(template.New("volumewatch").Parse(pageTemplates))

const pageTemplates = `
{{define "head"}}
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>
  body { font-family: sans-serif; margin: 2rem auto; max-width: 70rem; padding: 0 1rem; color: #222; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #ddd; padding: 0.4rem 0.6rem; text-align: right; }
  th { background: #f4f4f4; }
  td:first-child, th:first-child { text-align: left; }
  .pos { background: #c6efce; color: #006100; }
  .neg { background: #ffc7ce; color: #9c0006; }
  .msg { color: #006100; }
  .warn { color: #9c6500; }
  .err { color: #9c0006; }
  .metrics { display: flex; gap: 2rem; margin: 1rem 0; }
  .metric b { font-size: 1.5rem; display: block; }
  form.inline { display: inline; }
  footer { margin-top: 1rem; color: #666; font-size: 0.85rem; }
</style>
{{end}}

{{define "flash"}}
{{if .Message}}<p class="msg">{{.Message}}</p>{{end}}
{{if .Warning}}<p class="warn">{{.Warning}}</p>{{end}}
{{if .Error}}<p class="err">{{.Error}}</p>{{end}}
{{end}}

{{define "login"}}
<!DOCTYPE html>
<html>
<head><title>Login - VolumeWatch</title>{{template "head"}}</head>
<body>
  <h1>Login</h1>
  {{if .Message}}<p class="msg">{{.Message}}</p>{{end}}
  {{if .Error}}<p class="err">{{.Error}}</p>{{end}}
  <form method="post" action="/login">
    <p><label>Username <input name="username" autofocus></label></p>
    <p><label>Password <input name="password" type="password"></label></p>
    <p><button type="submit">Login</button></p>
  </form>
  <p><a href="/signup">Create an account</a></p>
</body>
</html>
{{end}}

{{define "signup"}}
<!DOCTYPE html>
<html>
<head><title>Sign up - VolumeWatch</title>{{template "head"}}</head>
<body>
  <h1>Sign up</h1>
  {{if .Message}}<p class="msg">{{.Message}}</p>{{end}}
  {{if .Error}}<p class="err">{{.Error}}</p>{{end}}
  <form method="post" action="/signup">
    <p><label>Username <input name="username" autofocus></label></p>
    <p><label>Password <input name="password" type="password"></label></p>
    <p><button type="submit">Create account</button></p>
  </form>
  <p><a href="/login">Back to login</a></p>
</body>
</html>
{{end}}

{{define "dashboard"}}
<!DOCTYPE html>
<html>
<head><title>Stock Volume Tracker - VolumeWatch</title>{{template "head"}}</head>
<body>
  <h1>Stock Volume Tracker</h1>
  <p>
    Signed in as <b>{{.Username}}</b>
    <form class="inline" method="post" action="/logout"><button type="submit">Logout</button></form>
  </p>
  {{template "flash" .}}

  <h2>Manage Symbols</h2>
  <form class="inline" method="post" action="/symbols/add">
    <input name="symbol" placeholder="Add new symbol">
    <button type="submit">Add Symbol</button>
  </form>
  {{if .Symbols}}
  <form class="inline" method="post" action="/symbols/remove">
    <select name="symbol">
      {{range .Symbols}}<option value="{{.}}">{{.}}</option>{{end}}
    </select>
    <button type="submit">Remove Symbol</button>
  </form>
  {{end}}
  <form class="inline" method="post" action="/refresh">
    <button type="submit">&#x1F504; Update Data</button>
  </form>

  {{if not .Symbols}}
    <p>No symbols added yet. Add symbols above to start tracking.</p>
  {{else if .Table.Empty}}
    <p class="warn">No valid data found for the given symbols.</p>
  {{else}}
    {{with .Table}}
    <div class="metrics">
      <div class="metric"><b>{{.TotalStocks}}</b> Total Stocks</div>
      <div class="metric"><b>{{.PositiveDailyChange}}</b> Stocks with Positive Daily Change</div>
      <div class="metric"><b>{{.PositiveVolumeChange}}</b> Stocks with Positive Volume Change</div>
    </div>
    <table>
      <tr>
        <th>Symbol</th><th>Price</th><th>Daily Change</th><th>Volume Change</th>
        <th>Volume</th><th>Avg Volume</th><th>YTD Return</th><th>Date</th>
      </tr>
      {{range .Rows}}
      <tr>
        <td>{{.Symbol}}</td>
        <td>{{.Price}}</td>
        <td class="{{if gt .DailyChange 0.0}}pos{{else if lt .DailyChange 0.0}}neg{{end}}">{{printf "%+.2f%%" .DailyChange}}</td>
        <td class="{{if gt .VolumeChange 0.0}}pos{{else if lt .VolumeChange 0.0}}neg{{end}}">{{printf "%.2f%%" .VolumeChange}}</td>
        <td>{{.VolumeDisplay}}</td>
        <td>{{.AvgVolumeDisplay}}</td>
        <td class="{{if gt .YTDReturn 0.0}}pos{{else if lt .YTDReturn 0.0}}neg{{end}}">{{printf "%.2f%%" .YTDReturn}}</td>
        <td>{{.Date}}</td>
      </tr>
      {{end}}
    </table>
    <footer>Data generated on: {{.GeneratedAt}}</footer>
    {{end}}
  {{end}}
</body>
</html>
{{end}}
`
