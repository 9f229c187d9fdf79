// Package reinforcement implements the replenishment request workflow.
//
// A request asks the laundry to assemble and ship additional packs for one
// client, usually seeded from a replenishment alert's missing-packs figure.
// Requests are born Pendiente and advance through En Gestión and Enviado to
// Completado. Only the status ever changes after creation; requests are
// never deleted here.
package reinforcement
