package zoo

import "fmt"

// Speaker is anything that can identify itself.
type Speaker interface {
	// Name returns the creature's name.
	Name() string

	// Speak returns the creature's identification line, newline included.
	Speak() string
}

// Animal is the base creature: a name and an age, both fixed at construction.
type Animal struct {
	name string
	age  int
}

// NewAnimal constructs a base creature.
func NewAnimal(name string, age int) Animal {
	return Animal{name: name, age: age}
}

// Name returns the creature's name.
func (a Animal) Name() string { return a.name }

// Age returns the creature's age.
func (a Animal) Age() int { return a.age }

// Speak returns the base identification line.
func (a Animal) Speak() string {
	return fmt.Sprintf("%s says hello, age %d\n", a.name, a.age)
}

// Dog overrides Speak with a bark.
type Dog struct {
	Animal
}

// NewDog constructs a Dog.
func NewDog(name string, age int) Dog {
	return Dog{Animal: NewAnimal(name, age)}
}

// Speak returns the dog's identification line.
func (d Dog) Speak() string {
	return fmt.Sprintf("%s says: Woof!\n", d.name)
}

// Cat overrides Speak with a meow.
type Cat struct {
	Animal
}

// NewCat constructs a Cat.
func NewCat(name string, age int) Cat {
	return Cat{Animal: NewAnimal(name, age)}
}

// Speak returns the cat's identification line.
func (c Cat) Speak() string {
	return fmt.Sprintf("%s says: Meow!\n", c.name)
}
