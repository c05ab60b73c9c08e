package mailer

import (
	"fmt"
	"html"
	"math"
	"strings"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type ReportMail struct {
	FirstName     string
	Email         string
	PayslipPeriod string
	AnomalyCount  int
	MonthlyGain   float64
	AnnualGain    float64
	TotalGain     float64
	Report        *dto.DetailedReport
}

type ContactMail struct {
	Name    string
	Email   string
	Subject string
	Message string
	IP      string
}

type IEmailService interface {
	SendReport(mail ReportMail) error
	SendContact(mail ContactMail) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	dialer        sender
	senderEmail   string
	senderName    string
	operatorEmail string
	logger        logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName, operatorEmail string, log logger.ILogger) IEmailService {
	return &emailService{
		dialer:        gomail.NewDialer(host, port, username, password),
		senderEmail:   username,
		senderName:    senderName,
		operatorEmail: operatorEmail,
		logger:        log,
	}
}

func (s *emailService) SendReport(mail ReportMail) error {
	m := s.reportMessage(mail)
	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send report", map[string]interface{}{"to": mail.Email, "error": err.Error()})
		return fmt.Errorf("send report to %s: %w", mail.Email, err)
	}
	s.logger.Info("MAILER", "Report sent", map[string]interface{}{"to": mail.Email})
	return nil
}

func (s *emailService) SendContact(mail ContactMail) error {
	if s.operatorEmail == "" {
		s.logger.Warn("MAILER", "No operator email configured, contact message kept in database only", nil)
		return nil
	}
	m := s.contactMessage(mail)
	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to forward contact message", map[string]interface{}{"from": mail.Email, "error": err.Error()})
		return fmt.Errorf("send contact message: %w", err)
	}
	s.logger.Info("MAILER", "Contact message forwarded", map[string]interface{}{"from": mail.Email})
	return nil
}

func ReportSubject(totalGain float64) string {
	return fmt.Sprintf("Votre rapport d'analyse - %.0f€ récupérables", math.Round(totalGain))
}

func (s *emailService) reportMessage(mail ReportMail) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", mail.Email)
	m.SetHeader("Subject", ReportSubject(mail.TotalGain))
	m.SetBody("text/html", reportBody(mail))
	return m
}

func (s *emailService) contactMessage(mail ContactMail) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", s.operatorEmail)
	m.SetAddressHeader("Reply-To", mail.Email, mail.Name)
	m.SetHeader("Subject", "[Contact] "+mail.Subject)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Nouveau message de contact</h2>
			<p><strong>Nom :</strong> %s</p>
			<p><strong>Email :</strong> %s</p>
			<p><strong>Sujet :</strong> %s</p>
			<p><strong>IP :</strong> %s</p>
			<hr>
			<p>%s</p>
		</div>
	`, esc(mail.Name), esc(mail.Email), esc(mail.Subject), esc(mail.IP), paragraphs(mail.Message))

	m.SetBody("text/html", body)
	return m
}

func reportBody(mail ReportMail) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; padding: 20px; color: #333; max-width: 720px;">`)
	fmt.Fprintf(&b, `<h2>Bonjour %s,</h2>`, esc(mail.FirstName))
	fmt.Fprintf(&b, `<p>Voici le rapport détaillé de l'analyse de votre bulletin %s.</p>`, esc(mail.PayslipPeriod))

	b.WriteString(`<h3>Résumé</h3><ul>`)
	fmt.Fprintf(&b, `<li>Anomalies détectées : %d</li>`, mail.AnomalyCount)
	fmt.Fprintf(&b, `<li>Gain mensuel : %s</li>`, euros(mail.MonthlyGain))
	fmt.Fprintf(&b, `<li>Gain annuel : %s</li>`, euros(mail.AnnualGain))
	fmt.Fprintf(&b, `<li>Gain total récupérable : <strong>%s</strong></li>`, euros(mail.TotalGain))
	b.WriteString(`</ul>`)

	r := mail.Report
	if r == nil {
		b.WriteString(`</div>`)
		return b.String()
	}

	if len(r.Anomalies) > 0 {
		b.WriteString(`<h3>Détail des anomalies</h3>`)
		for i, a := range r.Anomalies {
			fmt.Fprintf(&b, `<h4>%d. %s</h4><ul>`, i+1, esc(string(a.Title)))
			item(&b, "Ligne concernée", string(a.PayslipLine))
			item(&b, "Valeur constatée", string(a.ObservedValue))
			item(&b, "Valeur attendue", string(a.ExpectedValue))
			item(&b, "Calcul de l'écart", string(a.GapComputation))
			item(&b, "Écart mensuel", euros(float64(a.MonthlyGap)))
			item(&b, "Impact annuel", euros(float64(a.AnnualImpact)))
			item(&b, "Impact total", euros(float64(a.TotalImpact)))
			item(&b, "Référence légale", string(a.LegalReference))
			b.WriteString(`</ul>`)
			if a.Explanation != "" {
				b.WriteString(paragraphs(string(a.Explanation)))
			}
		}
	}

	k := r.KeyAmounts
	b.WriteString(`<h3>Montants clés</h3><ul>`)
	item(&b, "Salaire brut", euros(float64(k.GrossSalary)))
	item(&b, "Salaire net", euros(float64(k.NetSalary)))
	item(&b, "Heures travaillées", fmt.Sprintf("%.2f h", float64(k.HoursWorked)))
	item(&b, "Taux horaire", euros(float64(k.HourlyRate)))
	b.WriteString(`</ul>`)

	p := r.ClaimProcedure
	b.WriteString(`<h3>Procédure de réclamation</h3>`)
	list(&b, "ol", p.Steps)
	if p.LimitationPeriod != "" {
		fmt.Fprintf(&b, `<p><strong>Délai de prescription :</strong> %s</p>`, esc(string(p.LimitationPeriod)))
	}
	if len(p.Attachments) > 0 {
		b.WriteString(`<p><strong>Documents à joindre :</strong></p>`)
		list(&b, "ul", p.Attachments)
	}
	if len(p.Advice) > 0 {
		b.WriteString(`<p><strong>Conseils :</strong></p>`)
		list(&b, "ul", p.Advice)
	}

	if r.ClaimLetter != "" {
		b.WriteString(`<h3>Lettre de réclamation</h3>`)
		fmt.Fprintf(&b, `<pre style="white-space: pre-wrap; font-family: inherit; background: #f5f5f5; padding: 12px;">%s</pre>`, esc(string(r.ClaimLetter)))
	}

	if len(r.LegalReferences) > 0 {
		b.WriteString(`<h3>Références légales</h3>`)
		list(&b, "ul", r.LegalReferences)
	}

	b.WriteString(`<p style="font-size: 12px; color: #777;">Ce rapport est fourni à titre informatif et ne constitue pas un conseil juridique.</p></div>`)
	return b.String()
}

func item(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, `<li><strong>%s :</strong> %s</li>`, label, esc(value))
}

func list(b *strings.Builder, tag string, values []dto.Text) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "<%s>", tag)
	for _, v := range values {
		fmt.Fprintf(b, "<li>%s</li>", esc(string(v)))
	}
	fmt.Fprintf(b, "</%s>", tag)
}

func paragraphs(text string) string {
	return "<p>" + strings.ReplaceAll(esc(text), "\n", "<br>") + "</p>"
}

func euros(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f €", v), ".", ",", 1)
}

func esc(s string) string {
	return html.EscapeString(s)
}
