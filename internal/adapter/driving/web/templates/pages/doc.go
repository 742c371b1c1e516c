// Package pages holds the four portal page views.
package pages
