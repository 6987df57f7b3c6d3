// Package mailer sends marketplace notification mail. Failures are logged and
// never propagated to the caller.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/shopspring/decimal"
)

// Mailer is the notification sink consumed by services and the worker.
type Mailer interface {
	SendVerificationEmail(to, token string)
	SendSellerApplicationEmail(adminTo, applicantEmail, storeName, storeDescription string, upgrade bool)
	SendSellerApprovalEmail(to, tempPassword string)
	SendSellerUpgradeEmail(to string)
	SendOrderConfirmationEmail(to, orderID string, total decimal.Decimal)
	SendOrderStatusEmail(to, orderID, status string)
}

type Config struct {
	Host        string
	Port        string
	User        string
	Pass        string
	From        string
	FrontendURL string
}

type smtpMailer struct{ cfg Config }

func NewSMTP(cfg Config) Mailer { return &smtpMailer{cfg: cfg} }

func (m *smtpMailer) send(to, subject, body string) {
	addr := m.cfg.Host + ":" + m.cfg.Port

	msg := "From: " + m.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n" +
		body

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		log.Printf("[mailer] send to %s failed: %v", to, err)
		return
	}
	log.Printf("[mailer] sent %q to %s", subject, to)
}

func (m *smtpMailer) SendVerificationEmail(to, token string) {
	link := fmt.Sprintf("%s/verify-email/%s", m.cfg.FrontendURL, token)
	m.send(to, "Verify Your Email - Marketplace",
		"Thank you for registering with our marketplace!\n\n"+
			"Please open the link below to verify your email address:\n"+link+"\n\n"+
			"If you didn't create an account, please ignore this email.\n\nMarketplace Team")
}

func (m *smtpMailer) SendSellerApplicationEmail(adminTo, applicantEmail, storeName, storeDescription string, upgrade bool) {
	kind := "New seller application"
	if upgrade {
		kind = "Seller upgrade application"
	}
	if storeDescription == "" {
		storeDescription = "Not provided"
	}
	m.send(adminTo, kind+" - Marketplace",
		fmt.Sprintf("%s\n\nEmail: %s\nStore Name: %s\nStore Description: %s\n\n"+
			"Please review and approve this application.\n\nMarketplace System",
			kind, applicantEmail, storeName, storeDescription))
}

func (m *smtpMailer) SendSellerApprovalEmail(to, tempPassword string) {
	m.send(to, "Seller Application Approved - Marketplace",
		fmt.Sprintf("Your seller application has been approved and your account has been created.\n\n"+
			"Email: %s\nTemporary Password: %s\n\n"+
			"Please log in at %s/login and change your password immediately.\n\nMarketplace Team",
			to, tempPassword, m.cfg.FrontendURL))
}

func (m *smtpMailer) SendSellerUpgradeEmail(to string) {
	m.send(to, "Seller Account Upgraded - Marketplace",
		"Your account has been upgraded to a seller account.\n"+
			"You can now create your store and start selling products!\n\nMarketplace Team")
}

func (m *smtpMailer) SendOrderConfirmationEmail(to, orderID string, total decimal.Decimal) {
	m.send(to, "Order Confirmation - Marketplace",
		fmt.Sprintf("Thank you for your order!\n\nOrder ID: %s\nTotal Amount: $%s\n\n"+
			"We'll send you updates about your order status.\n\nMarketplace Team",
			orderID, total.StringFixed(2)))
}

func (m *smtpMailer) SendOrderStatusEmail(to, orderID, status string) {
	m.send(to, "Order Status Update - Marketplace",
		fmt.Sprintf("Your order #%s status has been updated to: %s\n\n"+
			"Thank you for shopping with us!\n\nMarketplace Team", orderID, status))
}
