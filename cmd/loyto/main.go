// Loyto - EC2 Instance Finder
// One identifier in, one instance ID out.
package main

func main() {
	Execute()
}
