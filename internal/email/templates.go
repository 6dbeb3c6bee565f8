package email

import (
	"fmt"
	"time"
)

// Subject is the fixed subject line, constant across invocations.
const Subject = "Ta citation motivationnelle du jour 💪"

// frenchWeekdays is indexed by time.Weekday (Sunday first).
var frenchWeekdays = [7]string{
	"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi",
}

// frenchMonths is indexed by time.Month - 1.
var frenchMonths = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// FormatFrenchDate renders t as "Lundi 2 Janvier 2026".
func FormatFrenchDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d",
		frenchWeekdays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// MotivationEmailText returns the plain-text body; the quote is used verbatim.
func MotivationEmailText(quote string) string {
	return quote
}

// MotivationEmailHTML returns the HTML body for the daily quote email.
// The quote is interpolated as-is, without HTML escaping — the model is
// instructed to emit plain French text only.
func MotivationEmailHTML(quote, senderName string, now time.Time) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Ta citation du jour</title>
</head>
<body style="margin:0;padding:20px;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:linear-gradient(135deg,#ff9a9e 0%%,#fecfef 50%%,#fecfef 100%%);">
<table width="100%%" cellpadding="0" cellspacing="0" style="padding:20px 0;">
<tr><td align="center">
<table width="600" cellpadding="0" cellspacing="0" style="background:rgba(255,255,255,0.95);border-radius:24px;box-shadow:0 20px 60px rgba(0,0,0,0.15);">
  <tr><td style="padding:40px 40px 0;">
    <span style="display:inline-block;background:linear-gradient(135deg,#ff6b9d 0%%,#c44569 100%%);color:#ffffff;padding:8px 20px;border-radius:20px;font-size:12px;font-weight:600;letter-spacing:0.5px;text-transform:uppercase;">%s</span>
  </td></tr>
  <tr><td style="padding:24px 40px 0;">
    <h1 style="margin:0;font-size:32px;font-weight:700;color:#2d3436;line-height:1.2;">Ta citation du jour 💪</h1>
  </td></tr>
  <tr><td style="padding:12px 40px 0;">
    <p style="margin:0;font-size:16px;color:#636e72;line-height:1.6;">
      Une dose quotidienne d'inspiration pour démarrer ta journée du bon pied.
    </p>
  </td></tr>
  <tr><td style="padding:32px 40px 0;">
    <div style="font-size:18px;color:#2d3436;line-height:1.8;padding:24px;background:rgba(255,182,193,0.1);border-left:4px solid #ff6b9d;border-radius:8px;">
      %s
    </div>
  </td></tr>
  <tr><td style="padding:32px 40px 0;text-align:right;">
    <p style="margin:0;font-size:16px;color:#2d3436;font-weight:500;">%s 💌</p>
  </td></tr>
  <tr><td style="padding:24px 40px 40px;text-align:center;">
    <p style="margin:0;font-size:11px;color:#636e72;opacity:0.7;">
      Citation générée automatiquement pour t'inspirer chaque jour.
    </p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`, FormatFrenchDate(now), quote, senderName)
}
