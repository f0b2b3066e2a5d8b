// Package qr generates table QR codes through the remote API and lays them
// out for printing, nine to an A4 sheet.
package qr
