// Package database manages the GORM connection used by the catalog and
// reinforcement features. It supports sqlite for single-site deployments and
// mysql for shared installs, with pooled connections and bounded setup.
package database
