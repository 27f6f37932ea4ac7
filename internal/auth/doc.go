// Package auth validates the shared-secret client credential. It is not a
// session or identity system: the credential is a static string compared for
// exact equality, carried either as a standard bearer Authorization header or
// in the x-app-token fallback header for constrained clients.
package auth
