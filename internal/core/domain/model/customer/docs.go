// Package customer provides the Customer entity referenced by purchase orders.
//
// Customers are owned by their own storage and resolved through the
// ports.CustomerProvider contract during order loading. The order domain only
// depends on customer identity; everything else about a customer is opaque
// to it.
package customer
