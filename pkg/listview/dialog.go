package listview

// Dialog is the modal primitive shared by destructive-action confirmation and
// validation alerts. A confirm dialog offers Cancel and Confirm actions; an
// alert offers a single acknowledgement. The rendering layer owns appearance
// only; behavior lives here.
//
// While Loading is true a mutation is in flight: both actions and dismissal
// are suppressed and the confirm action should be relabeled by the view.
type Dialog struct {
	Title       string
	Description string
	// Error carries a failure message for a mutation that was confirmed but
	// did not complete; the dialog stays open so the user can retry or back
	// out.
	Error        string
	ConfirmLabel string
	CancelLabel  string
	Loading      bool

	alertOnly bool
	onConfirm func()
	onCancel  func()
}

// NewConfirm builds a confirm-intent dialog with both actions.
func NewConfirm(title, description string, onConfirm, onCancel func()) *Dialog {
	return &Dialog{
		Title:        title,
		Description:  description,
		ConfirmLabel: "Confirm",
		CancelLabel:  "Cancel",
		onConfirm:    onConfirm,
		onCancel:     onCancel,
	}
}

// NewAlert builds an alert-intent dialog with a single acknowledgement
// action; onClose fires when it is acknowledged or dismissed.
func NewAlert(title, description string, onClose func()) *Dialog {
	return &Dialog{
		Title:        title,
		Description:  description,
		ConfirmLabel: "OK",
		alertOnly:    true,
		onConfirm:    onClose,
		onCancel:     onClose,
	}
}

// AlertOnly reports whether the dialog carries only an acknowledgement
// action.
func (d *Dialog) AlertOnly() bool { return d.alertOnly }

// Confirm fires the confirm action. Suppressed while Loading.
func (d *Dialog) Confirm() {
	if d.Loading || d.onConfirm == nil {
		return
	}
	d.onConfirm()
}

// Cancel fires the cancel action. Suppressed while Loading.
func (d *Dialog) Cancel() {
	if d.Loading || d.onCancel == nil {
		return
	}
	d.onCancel()
}

// Dismiss handles backdrop clicks and escape, which are equivalent to
// Cancel.
func (d *Dialog) Dismiss() { d.Cancel() }
