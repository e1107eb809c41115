package export

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-message/mail"

	"weekendly/internal/model"
)

// EmailOptions addresses a shared-plan email draft.
type EmailOptions struct {
	From    string
	To      string
	Subject string
}

// WriteEmail writes the snapshot as an RFC 5322 email draft (.eml) with
// the text itinerary as its body, suitable for opening in a mail client.
func WriteEmail(w io.Writer, snap model.PlanSnapshot, opts EmailOptions) error {
	subject := opts.Subject
	if subject == "" {
		subject = fmt.Sprintf("Weekend plan: %s", themeLabel(snap.Theme))
	}

	var h mail.Header
	h.SetDate(time.Now())
	h.SetSubject(subject)
	h.SetAddressList("From", []*mail.Address{{Address: opts.From}})
	h.SetAddressList("To", []*mail.Address{{Address: opts.To}})
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})

	mw, err := mail.CreateSingleInlineWriter(w, h)
	if err != nil {
		return fmt.Errorf("creating mail writer: %w", err)
	}

	if _, err := io.WriteString(mw, RenderText(snap)); err != nil {
		mw.Close()
		return fmt.Errorf("writing mail body: %w", err)
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("closing mail writer: %w", err)
	}
	return nil
}
