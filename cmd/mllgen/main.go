// Command mllgen renders declarative document trees (YAML or JSON) into
// HTML, XML, or JSON text using the mllwriter writers.
package main

func main() {
	execute()
}
