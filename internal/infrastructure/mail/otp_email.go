package mail

import (
	"fmt"
	"html/template"
	"strings"
)

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#f4f7f4;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:480px;margin:0 auto;padding:32px 16px;">
    <div style="background:#ffffff;border-radius:12px;padding:32px;text-align:center;">
      <h1 style="color:#1a7a4a;font-size:22px;margin:0 0 8px;">MuslimTime</h1>
      <p style="color:#333333;font-size:15px;margin:0 0 24px;">
        Assalamu'alaikum! Gunakan kode berikut untuk memverifikasi alamat email Anda:
      </p>
      <div style="background:#eef7f1;border-radius:8px;padding:16px;margin:0 0 24px;">
        <span style="font-size:32px;letter-spacing:8px;font-weight:bold;color:#1a7a4a;">{{.Code}}</span>
      </div>
      <p style="color:#666666;font-size:13px;margin:0 0 8px;">
        Kode ini berlaku selama <strong>10 menit</strong> dan hanya dapat dicoba
        sebanyak <strong>3 kali</strong>.
      </p>
      <p style="color:#999999;font-size:12px;margin:24px 0 0;">
        Jika Anda tidak meminta kode ini, abaikan email ini.
      </p>
    </div>
  </div>
</body>
</html>`))

func otpHTMLBody(code string) (string, error) {
	var sb strings.Builder
	if err := otpTemplate.Execute(&sb, struct{ Code string }{Code: code}); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func otpTextBody(code string) string {
	return fmt.Sprintf(
		"Assalamu'alaikum!\n\nKode verifikasi MuslimTime Anda: %s\n\n"+
			"Kode ini berlaku selama 10 menit dan hanya dapat dicoba sebanyak 3 kali.\n"+
			"Jika Anda tidak meminta kode ini, abaikan email ini.\n", code)
}
