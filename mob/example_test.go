package mob_test

import (
	"fmt"
	"log"
	"os"

	"github.com/arloliu/eikit/mob"
)

// ExampleTree builds a small object tree, serializes it and dumps the parsed
// copy as JSON.
func ExampleTree() {
	tree := mob.New()
	obj, err := tree.Root().AddChild(mob.IDObject)
	if err != nil {
		log.Fatal(err)
	}
	name, err := obj.AddChild(mob.IDObjName)
	if err != nil {
		log.Fatal(err)
	}
	if err := name.SetString("Hero\x00"); err != nil {
		log.Fatal(err)
	}

	parsed, err := mob.Parse(tree.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := mob.Dump(os.Stdout, parsed.Root()); err != nil {
		log.Fatal(err)
	}

	// Output:
	// {"id":"0xFFFFFFFF","type":"Record","size":21,"children":[{"id":"0x0000B001","name":"OBJECT","type":"Record","size":21,"children":[{"id":"0x0000B004","name":"OBJNAME","type":"String","size":13,"value":"Hero\u0000"}]}]}
}

// ExampleEncryptString shows the seed prefix of encrypted strings.
func ExampleEncryptString() {
	enc, err := mob.EncryptString("Hero", 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%x\n", enc)

	dec, err := mob.DecryptString(enc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(dec)

	// Output:
	// 000000006e4284ea
	// Hero
}
