// Package travel provides the deterministic mock travel catalog the
// specialist agents ground their answers in: flight offers, hotels,
// activities and restaurants with fixed prices and availability.
//
// All search functions are pure over in-code inventories, so agent behavior
// is reproducible in tests and demos without external booking APIs. Swap the
// catalog-backed tools for real API integrations to go live.
package travel
