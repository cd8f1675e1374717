package mail

import (
	"fmt"
	"strconv"
)

// NotificationData feeds the owner-notification template. Name, Email and
// Message must already be HTML-escaped by the caller.
type NotificationData struct {
	Name      string
	Email     string
	Message   string
	Remaining int
	// Soft anti-abuse signals echoed in the metrics block.
	MouseMovements   *int
	Keystrokes       *int
	Timezone         string
	ScreenResolution string
}

// ConfirmationData feeds the sender-confirmation template. Name and Message
// must already be HTML-escaped.
type ConfirmationData struct {
	Name    string
	Message string
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func counterOrNA(n *int) string {
	// Zero renders as N/A, matching how the form omits absent counters.
	if n == nil || *n == 0 {
		return "N/A"
	}
	return strconv.Itoa(*n)
}

// NotificationHTML renders the email sent to the site owner for each
// accepted submission.
func NotificationHTML(d NotificationData) string {
	return fmt.Sprintf(`
        <div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto;">
          <h2 style="color: #6366f1; border-bottom: 2px solid #6366f1; padding-bottom: 10px;">
            📬 Nouveau message depuis votre portfolio
          </h2>
          <div style="background: #f4f4f5; border-radius: 8px; padding: 20px; margin: 20px 0;">
            <p><strong>👤 Nom:</strong> %s</p>
            <p><strong>📧 Email:</strong> <a href="mailto:%s">%s</a></p>
            <p><strong>💬 Message:</strong></p>
            <div style="background: white; padding: 15px; border-radius: 6px; border-left: 4px solid #6366f1;">
              %s
            </div>
          </div>
          <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
          <div style="color: #666; font-size: 12px;">
            <p><strong>📊 Métriques anti-spam:</strong></p>
            <ul>
              <li>Messages restants: %d</li>
              <li>Mouvements souris: %s</li>
              <li>Frappes clavier: %s</li>
              <li>Timezone: %s</li>
              <li>Résolution: %s</li>
            </ul>
          </div>
        </div>
      `,
		d.Name, d.Email, d.Email, d.Message, d.Remaining,
		counterOrNA(d.MouseMovements), counterOrNA(d.Keystrokes),
		orNA(d.Timezone), orNA(d.ScreenResolution))
}

// ConfirmationHTML renders the acknowledgement sent back to the visitor.
func ConfirmationHTML(d ConfirmationData) string {
	return fmt.Sprintf(`
        <div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
          <div style="text-align: center; margin-bottom: 30px;">
            <h1 style="color: #6366f1; margin: 0;">Merci %s !</h1>
            <p style="color: #666;">Votre message a bien été reçu</p>
          </div>

          <p style="color: #555; line-height: 1.6;">
            J'ai bien reçu votre message et je vous répondrai dans les plus brefs délais.
          </p>

          <div style="background: linear-gradient(135deg, #f4f4f5 0%%, #e5e7eb 100%%); border-radius: 12px; padding: 20px; margin: 25px 0;">
            <p style="color: #666; margin: 0 0 10px 0; font-size: 14px;"><strong>📝 Récapitulatif de votre message :</strong></p>
            <p style="color: #333; margin: 0; white-space: pre-wrap; line-height: 1.6;">%s</p>
          </div>

          <div style="text-align: center; margin: 30px 0;">
            <p style="color: #555; margin-bottom: 15px;">En attendant, retrouvez-moi sur :</p>
            <a href="https://github.com/Jcalixte24" style="display: inline-block; background: #333; color: white; padding: 10px 20px; border-radius: 6px; text-decoration: none; margin: 5px;">
              🔗 GitHub
            </a>
            <a href="https://www.linkedin.com/in/japhet-calixte-n'dri-0b73832a0" style="display: inline-block; background: #0077b5; color: white; padding: 10px 20px; border-radius: 6px; text-decoration: none; margin: 5px;">
              💼 LinkedIn
            </a>
          </div>

          <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 25px 0;">

          <div style="text-align: center;">
            <p style="color: #333; margin-bottom: 5px;">
              <strong>Japhet Calixte N'DRI</strong>
            </p>
            <p style="color: #6366f1; margin: 0; font-size: 14px;">
              Data Scientist & Développeur Web
            </p>
          </div>

          <p style="color: #999; font-size: 11px; text-align: center; margin-top: 30px;">
            Cet email a été envoyé automatiquement. Si vous n'avez pas envoyé ce message, veuillez l'ignorer.
          </p>
        </div>
      `, d.Name, d.Message)
}
