// Package schema derives form models from OpenAPI request bodies so a form's
// constraints can live next to the API that receives it.
package schema
