// Package cookie reads and writes the cookies a wiki front-end needs: plain
// preference cookies shared with page scripts (such as the table of contents
// state) and encrypted one-shot flash cookies for notices shown after a
// redirect.
//
//	m, err := cookie.New([]string{secret})
//	m.Set(w, "mw_hidetoc", "1", cookie.WithTTL(30*24*time.Hour), cookie.WithHTTPOnly(false))
//	m.Delete(w, "mw_hidetoc")
//
//	_ = m.SetFlash(w, "notice", "Saved")
//	var notice string
//	if err := m.GetFlash(w, r, "notice", &notice); err == nil {
//		// show notice
//	}
//
// Encrypted values use AES-256-GCM keyed by the first 32 bytes of a secret.
// Several secrets may be configured; the first encrypts, all are tried on read.
package cookie
