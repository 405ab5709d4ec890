package components

import (
	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/Veraticus/parceiro/internal/report"
)

// ExportRequestMsg asks for the rows on screen to be written to a report.
type ExportRequestMsg struct {
	Kind  report.Kind
	Table listview.Table
}

// CopyLinkRequestMsg asks for the referral link to be copied.
type CopyLinkRequestMsg struct{}

// OpenLinkRequestMsg asks for the referral link to be opened in a browser.
type OpenLinkRequestMsg struct{}

// DownloadRequestMsg asks for a material to be downloaded.
type DownloadRequestMsg struct {
	Material model.Material
}

// PreviewRequestMsg asks for a material preview.
type PreviewRequestMsg struct {
	Material model.Material
}

// SaveProfileRequestMsg submits the personal data form.
type SaveProfileRequestMsg struct {
	Profile model.Profile
}

// SavePaymentRequestMsg submits the payment form.
type SavePaymentRequestMsg struct {
	Payment model.PaymentInfo
}

// ShowHelpMsg shows the help screen.
type ShowHelpMsg struct{}
