package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"pilotdeck/internal/client/controllers"
	"pilotdeck/internal/client/models"
	"pilotdeck/internal/client/storage"
)

var (
	expiredColor  = color.New(color.FgRed)
	expiringColor = color.New(color.FgYellow)
)

// Certs prints the certifications, newest first, with the expiry status
// highlighted.
func (a *App) Certs(ctx context.Context) error {
	if a.certs.State() != controllers.Ready {
		fmt.Println("Certifications are", a.certs.State())
		return nil
	}

	certs := a.certs.Certifications()
	if len(certs) == 0 {
		fmt.Println("No certifications yet.")
		return nil
	}

	now := time.Now()
	for _, c := range certs {
		status := string(c.Status(now))
		switch c.Status(now) {
		case models.CertificationExpired:
			status = expiredColor.Sprint(status)
		case models.CertificationExpiring:
			status = expiringColor.Sprintf("%s (%d days)", status, c.DaysUntilExpiry(now))
		}

		fmt.Printf("%s  %-32s %-10s expires %s  %s\n",
			c.ID, c.Type, c.Number, c.ExpiryDate.Format(time.DateOnly), status)
		if c.ImageURL != "" {
			fmt.Println("    image:", c.ImageURL)
		}
	}
	return nil
}

// AddCert prompts for the certification fields, optionally attaching a
// certificate image from disk, and creates the record.
func (a *App) AddCert(ctx context.Context) error {
	fmt.Println("Certification types:")
	for _, t := range models.CertificationTypes {
		fmt.Println("  -", t)
	}

	certType, err := getSimpleText(a.reader, "Type", os.Stdout)
	if err != nil {
		return err
	}
	number, err := getSimpleText(a.reader, "Certificate number", os.Stdout)
	if err != nil {
		return err
	}
	issue, err := GetDate(a.reader, "Issue date", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	expiry, err := GetDate(a.reader, "Expiry date", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Certificate image path (optional)", os.Stdout)
	if err != nil {
		return err
	}

	var attachment *storage.Attachment
	if imagePath != "" {
		attachment, err = storage.LoadAttachment(imagePath)
		if err != nil {
			fmt.Println(err)
			return err
		}
	}

	_, err = a.certs.Create(ctx, models.Certification{
		Type:       certType,
		Number:     number,
		IssueDate:  issue,
		ExpiryDate: expiry,
	}, attachment)
	if err != nil {
		fmt.Println("Could not save certification:", err)
		return err
	}

	fmt.Println("Certification added.")
	return nil
}

// DelCert prompts for a certification id and deletes the record.
func (a *App) DelCert(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Certification id", os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Println("Usage: delcert, then enter the id shown by 'certs'")
		return nil
	}

	if err := a.certs.Delete(ctx, id); err != nil {
		fmt.Println("Could not delete certification:", err)
		return err
	}

	fmt.Println("Certification deleted.")
	return nil
}
