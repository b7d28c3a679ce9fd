package bubbletea

import (
	"strings"

	"github.com/tellerhq/teller"
)

// transferModal renders the transfer-confirmation view: the proposed
// destination, amount and source, and the confirm/cancel key hints. It is
// purely presentational; the pending transfer itself lives in the
// controller.
type transferModal struct {
	transfer teller.PendingTransfer
	styles   Styles
}

func newTransferModal(t teller.PendingTransfer, styles Styles) transferModal {
	return transferModal{transfer: t, styles: styles}
}

func (m transferModal) View() string {
	const labelWidth = 12

	row := func(label, value string) string {
		return m.styles.ModalLabel.Render(padRight(label, labelWidth)) + value
	}

	var b strings.Builder
	b.WriteString(m.styles.Accent.Render("Confirm Transfer"))
	b.WriteString("\n\n")
	b.WriteString(row("To Account", m.transfer.ToAccount))
	b.WriteString("\n")
	b.WriteString(row("Amount", m.styles.Success.Render("$"+m.transfer.Amount.StringFixed(2))))
	b.WriteString("\n")
	b.WriteString(row("From", m.transfer.FromAccount))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("y/Enter confirm · n/Esc cancel"))

	return m.styles.ModalBorder.Render(b.String())
}
