// Package services implements the driving ports: the ingestion pipeline
// that builds the chunk collection, and the ask pipeline that retrieves
// context and composes grounded answers.
package services
