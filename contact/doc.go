// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package contact implements the contact form.

# States

A Form moves idle → loading → success or error:

	f := contact.NewForm()
	f.Fill(contact.Submission{Name: "Ana", Email: "ana@example.com", Message: "Hi"})
	err := f.Submit(ctx, sender)

Validation runs first: a missing name or message, or an email that is not
text@text, records per-field errors in Errors, leaves the status alone and
never calls the sender. Only one send may be pending. Success clears the
fields; error keeps them for resubmission. There is no retry.

# Senders

HTTPSender posts the submission as JSON to the mail-send endpoint; any
non-2xx status or transport failure is an error. SenderFunc adapts an
in-process function.
*/
package contact
